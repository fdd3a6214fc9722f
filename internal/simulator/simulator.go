package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/microlead/loan-amortization/internal/calculations"
	"github.com/microlead/loan-amortization/internal/console"
	"github.com/microlead/loan-amortization/internal/metrics"
	"github.com/microlead/loan-amortization/internal/report"
)

const (
	infeasibleMessage = "L'échéance mensuelle est inférieure à 10 euro. Veuillez saisir de nouvelles données !"
	exportQuestion    = "Voulez-vous exporter les résultats en PDF ?"
	replayQuestion    = "Voulez-vous effectuer une autre simulation ?"
)

// Exporter сохраняет график в документ и возвращает путь к файлу
type Exporter interface {
	Export(req calculations.LoanRequest, schedule calculations.Schedule) (string, error)
}

// Simulator ведет диалог: ввод, расчет, вывод, экспорт, повтор
type Simulator struct {
	prompter *console.Prompter
	out      io.Writer
	exporter Exporter
	tracer   trace.Tracer
	logger   *zap.Logger
}

// New создает Simulator
func New(prompter *console.Prompter, out io.Writer, exporter Exporter, tracer trace.Tracer, logger *zap.Logger) *Simulator {
	return &Simulator{
		prompter: prompter,
		out:      out,
		exporter: exporter,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run повторяет цикл симуляции, пока пользователь не откажется или не закончится ввод
func (s *Simulator) Run(ctx context.Context) error {
	s.prompter.Welcome()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := s.prompter.ReadRequest(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read loan request: %w", err)
		}

		result, err := s.Simulate(ctx, req)
		if errors.Is(err, calculations.ErrInfeasibleLoan) {
			s.prompter.Error(infeasibleMessage)
			continue
		}
		if err != nil {
			return err
		}

		if err := report.Encode(s.out, report.FormatTable, result); err != nil {
			return fmt.Errorf("failed to print schedule: %w", err)
		}

		export, err := s.prompter.Confirm(ctx, exportQuestion)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if export {
			// ошибка уже показана пользователю, диалог продолжается
			_, _ = s.Export(ctx, result)
		}

		again, err := s.prompter.Confirm(ctx, replayQuestion)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// Simulate выполняет один расчет графика с трейсингом и метриками
func (s *Simulator) Simulate(ctx context.Context, req calculations.LoanRequest) (*calculations.CalculationResult, error) {
	id := uuid.NewString()
	_, span := s.tracer.Start(ctx, "compute_schedule")
	defer span.End()

	span.SetAttributes(
		attribute.String("simulation_id", id),
		attribute.Int64("principal", req.Principal),
		attribute.String("annual_rate_percent", req.AnnualRatePercent.String()),
		attribute.Int("duration_years", req.DurationYears),
	)

	result, err := calculations.AnnuitySchedule(req)
	if err != nil {
		var infeasible *calculations.InfeasibleLoanError
		if errors.As(err, &infeasible) {
			span.SetAttributes(attribute.Int64("installment", infeasible.Installment))
			span.SetStatus(codes.Error, "infeasible")
			metrics.Simulations.WithLabelValues("infeasible").Inc()
			s.logger.Info("loan rejected",
				zap.String("simulation_id", id),
				zap.Int64("installment", infeasible.Installment),
				zap.Int64("minimum", infeasible.Minimum),
			)
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "calculation_error")
		metrics.Simulations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to compute schedule: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("installment", result.Summary.MonthlyInstallment),
		attribute.Int("rows", len(result.Schedule)),
	)
	metrics.Simulations.WithLabelValues("success").Inc()
	metrics.ScheduleRows.Observe(float64(len(result.Schedule)))
	s.logger.Debug("schedule computed",
		zap.String("simulation_id", id),
		zap.Int64("installment", result.Summary.MonthlyInstallment),
		zap.Int("rows", len(result.Schedule)),
	)

	return result, nil
}

// Export сохраняет результат в документ. Ошибка экспорта не прерывает диалог.
func (s *Simulator) Export(ctx context.Context, result *calculations.CalculationResult) (string, error) {
	_, span := s.tracer.Start(ctx, "export_pdf")
	defer span.End()

	path, err := s.exporter.Export(result.Request, result.Schedule)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "export_error")
		metrics.Exports.WithLabelValues("error").Inc()
		s.logger.Error("export failed", zap.Error(err))
		s.prompter.Error(fmt.Sprintf("L'export a échoué : %v", err))
		return "", err
	}

	span.SetAttributes(attribute.String("path", path))
	metrics.Exports.WithLabelValues("success").Inc()
	s.prompter.Success(fmt.Sprintf("Les résultats ont été exportés dans %s", path))
	return path, nil
}
