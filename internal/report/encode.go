package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/microlead/loan-amortization/internal/calculations"
)

// Поддерживаемые форматы вывода
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// CheckFormat проверяет формат вывода до расчета
func CheckFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Encode печатает результат расчета в выбранном формате
func Encode(w io.Writer, format string, result *calculations.CalculationResult) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	switch format {
	case FormatTable, "":
		if err := WriteTable(w, result.Schedule); err != nil {
			return err
		}
		return WriteSummary(w, result.Summary)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}
	return nil
}
