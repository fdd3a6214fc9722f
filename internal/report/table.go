// Package report выводит график платежей в терминал, PDF, JSON и YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/microlead/loan-amortization/internal/calculations"
)

const tableHeader = "Mois | Montant initial |   EMI   | Intérêts  | Amortissement  | Montant final "

// WriteTable печатает график платежей фиксированной ширины
func WriteTable(w io.Writer, schedule calculations.Schedule) error {
	if _, err := fmt.Fprintf(w, "\nTableau d'Amortissement :\n\n%s\n%s\n", tableHeader, strings.Repeat("-", 80)); err != nil {
		return err
	}
	for _, row := range schedule {
		if err := WriteRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteRow печатает одну строку таблицы
func WriteRow(w io.Writer, row calculations.ScheduleRow) error {
	_, err := fmt.Fprintf(w, "%-4d | %13d € |%6d € | %7d € |%12d € | %12d €\n",
		row.Month, row.OpeningBalance, row.Installment, row.Interest, row.PrincipalPortion, row.ClosingBalance)
	return err
}

// WriteSummary печатает итоги по кредиту после таблицы
func WriteSummary(w io.Writer, summary calculations.LoanSummary) error {
	_, err := fmt.Fprintf(w, "\nMensualité : %d € | Dernière échéance : %d € | Total remboursé : %d € | Coût des intérêts : %d €\n",
		summary.MonthlyInstallment, summary.LastInstallment, summary.TotalPaid, summary.TotalInterest)
	return err
}
