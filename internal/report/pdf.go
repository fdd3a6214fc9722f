package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/microlead/loan-amortization/internal/calculations"
	"github.com/microlead/loan-amortization/internal/config"
)

const pdfExt = ".pdf"

var (
	columnWidths = []float64{15, 35, 35, 35, 35, 35}
	columnTitles = []string{"Mois", "Montant initial", "EMI", "Intérêts", "Amortissement", "Montant final"}
)

// PDFExporter сохраняет график платежей в PDF в каталоге выгрузки
type PDFExporter struct {
	OutputDir string
	BaseName  string
	LogoPath  string
}

// NewPDFExporter создает экспортер из конфигурации
func NewPDFExporter(cfg *config.Config) *PDFExporter {
	return &PDFExporter{
		OutputDir: cfg.OutputDir,
		BaseName:  cfg.PDFBaseName,
		LogoPath:  cfg.LogoPath,
	}
}

// Export пишет документ в новый файл и возвращает его путь
func (e *PDFExporter) Export(req calculations.LoanRequest, schedule calculations.Schedule) (string, error) {
	path, err := UniqueFilename(e.OutputDir, e.BaseName, pdfExt)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := e.Render(f, req, schedule); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// Render строит документ: исходные данные и таблица платежей
func (e *PDFExporter) Render(w io.Writer, req calculations.LoanRequest, schedule calculations.Schedule) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFillColor(35, 75, 104)

	if e.hasLogo() {
		pdf.ImageOptions(e.LogoPath, (210-30)/2, 10, 30, 10, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Données d'Amortissement"), "", 0, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 10, tr(fmt.Sprintf("Montant du prêt : %d Euros", req.Principal)), "", "", false)
	// ставка печатается как введена: "5 %", а не "5.0 %"
	pdf.MultiCell(0, 10, tr(fmt.Sprintf("Taux d'intérêt annuel : %s %%", req.AnnualRatePercent)), "", "", false)
	pdf.MultiCell(0, 10, tr(fmt.Sprintf("Durée du prêt : %d années", req.DurationYears)), "", "", false)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Tableau d'Amortissement", "", 0, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 10, tr("Les montants sont exprimés en Euros"), "", 0, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)

	for i, title := range columnTitles {
		pdf.CellFormat(columnWidths[i], 10, tr(title), "B", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range schedule {
		values := []int64{int64(row.Month), row.OpeningBalance, row.Installment, row.Interest, row.PrincipalPortion, row.ClosingBalance}
		for i, v := range values {
			pdf.CellFormat(columnWidths[i], 10, strconv.FormatInt(v, 10), "", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

func (e *PDFExporter) hasLogo() bool {
	if e.LogoPath == "" {
		return false
	}
	_, err := os.Stat(e.LogoPath)
	return err == nil
}
