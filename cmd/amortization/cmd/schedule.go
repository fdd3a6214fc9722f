package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/microlead/loan-amortization/internal/calculations"
	"github.com/microlead/loan-amortization/internal/console"
	"github.com/microlead/loan-amortization/internal/report"
	"github.com/microlead/loan-amortization/internal/simulator"
	"github.com/microlead/loan-amortization/internal/validators"
)

func newScheduleCmd() *cobra.Command {
	var (
		amount   string
		rate     string
		years    string
		format   string
		writePDF bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Calcule un tableau d'amortissement sans dialogue",
		Example: `  amortization schedule --amount 10000 --rate 5 --years 2
  amortization schedule --amount 150000 --rate 3,75 --years 20 --format json
  amortization schedule --amount 10000 --rate 5 --years 2 --pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := report.CheckFormat(format); err != nil {
				return err
			}

			return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
				req, err := validators.ParseRequest(rt.cfg, amount, rate, years)
				if err != nil {
					return err
				}

				prompter := console.NewPrompter(rt.cfg, strings.NewReader(""), cmd.ErrOrStderr())
				sim := simulator.New(prompter, cmd.OutOrStdout(), report.NewPDFExporter(rt.cfg), rt.tracer, rt.logger)

				result, err := sim.Simulate(ctx, req)
				if errors.Is(err, calculations.ErrInfeasibleLoan) {
					return fmt.Errorf("l'échéance mensuelle est inférieure à %d euro: %w", calculations.MinInstallment, err)
				}
				if err != nil {
					return err
				}

				if err := report.Encode(cmd.OutOrStdout(), format, result); err != nil {
					return err
				}
				if writePDF {
					if _, err := sim.Export(ctx, result); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Montant du prêt en euros")
	cmd.Flags().StringVar(&rate, "rate", "", "Taux d'intérêt nominal annuel (ex. 3,75)")
	cmd.Flags().StringVar(&years, "years", "", "Durée du prêt en années")
	cmd.Flags().StringVar(&format, "format", report.FormatTable, "Format de sortie: table, json, yaml")
	cmd.Flags().BoolVar(&writePDF, "pdf", false, "Exporter aussi le tableau en PDF")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}
