package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/microlead/loan-amortization/internal/config"
	"github.com/microlead/loan-amortization/internal/console"
	"github.com/microlead/loan-amortization/internal/logging"
	"github.com/microlead/loan-amortization/internal/metrics"
	"github.com/microlead/loan-amortization/internal/report"
	"github.com/microlead/loan-amortization/internal/simulator"
	"github.com/microlead/loan-amortization/internal/tracing"
)

// version задается при сборке через -ldflags "-X ...cmd.version=..."
var version = "dev"

// NewRootCmd собирает дерево команд
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "amortization",
		Short: "Simulation de calcul d'amortissement de prêt",
		Long: `Calcule le tableau d'amortissement mensuel d'un prêt à partir du montant,
du taux d'intérêt nominal annuel et de la durée en années.

Sans sous-commande, lance la simulation interactive.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
				prompter := console.NewPrompter(rt.cfg, cmd.InOrStdin(), cmd.OutOrStdout())
				sim := simulator.New(prompter, cmd.OutOrStdout(), report.NewPDFExporter(rt.cfg), rt.tracer, rt.logger)
				// Ctrl-C во время диалога - обычный выход
				if err := sim.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			})
		},
	}

	root.AddCommand(newScheduleCmd(), newVersionCmd())
	return root
}

// Execute запускает CLI
func Execute() error {
	return NewRootCmd().Execute()
}

type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	tracer trace.Tracer
}

// withRuntime загружает конфигурацию, логгер, трейсинг и метрики на время команды
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *runtime) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	tracer, shutdown, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, version, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	if cfg.MetricsAddr != "" {
		go func() {
			logger.Info("serving metrics", zap.String("addr", cfg.MetricsAddr))
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	return fn(ctx, &runtime{cfg: cfg, logger: logger, tracer: tracer})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Affiche la version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
