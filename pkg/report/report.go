package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"agromon/entities"
)

// StageDisplay is the fixed example phenological stage shown for every
// record. It is a deliberate placeholder carried over from the source
// behavior, not derived from any stored field.
const StageDisplay = "R6 (Floração)"

const EmptyNotice = "Nenhum talhão cadastrado para monitoramento."

const rulerWide = "=================================================="
const rulerNarrow = "----------------------------------------"

// Total sums the stored estimated losses; it never re-derives them.
func Total(records []entities.FieldRecord) float64 {
	var t float64
	for _, r := range records {
		t += r.EstimatedLoss
	}
	return t
}

// Render produces the financial-loss summary for all records in
// insertion order. Pure read: the input is never mutated.
func Render(records []entities.FieldRecord) string {
	var b strings.Builder
	if len(records) == 0 {
		fmt.Fprintf(&b, "\n%s\n", EmptyNotice)
		return b.String()
	}

	fmt.Fprintf(&b, "\n%s\n", rulerWide)
	fmt.Fprintf(&b, "      RELATÓRIO DE MONITORAMENTO DE ESTRESSE HÍDRICO\n")
	fmt.Fprintf(&b, "%s\n", rulerWide)

	for _, r := range records {
		fmt.Fprintf(&b, "\n[TALHÃO ID: %d | CULTIVAR: %s | ÁREA: %g ha]\n", r.ID, r.Cultivar, r.AreaHectares)
		fmt.Fprintf(&b, "Estágio Fenológico (Exemplo Fixo): %s\n", StageDisplay)
		fmt.Fprintf(&b, "%s\n", rulerNarrow)
		fmt.Fprintf(&b, "Nível de Estresse Hídrico: %s\n", strings.ToUpper(r.StressLevel))
		fmt.Fprintf(&b, "PERDA ESTIMADA DE PRODUTIVIDADE: %.1f%%\n", r.LossFraction*100)
		fmt.Fprintf(&b, "PREJUÍZO FINANCEIRO ESTIMADO: R$ %s\n", formatAmount(r.EstimatedLoss))
		fmt.Fprintf(&b, "ALERTA DO SISTEMA: %s\n", r.AlertMessage)
		fmt.Fprintf(&b, "%s\n", rulerNarrow)
	}

	fmt.Fprintf(&b, "\n%s\n", rulerWide)
	fmt.Fprintf(&b, "TOTAL DE PREJUÍZO (Simulado): R$ %s\n", formatAmount(Total(records)))
	fmt.Fprintf(&b, "%s\n", rulerWide)
	return b.String()
}

// BuildXLSX renders the same summary as a spreadsheet, one row per
// record plus a grand-total row.
func BuildXLSX(records []entities.FieldRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Cultivar", "Área (ha)", "Estágio Fenológico", "Estresse", "Perda (%)", "Prejuízo (R$)", "Alerta"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, r := range records {
		values := []any{r.ID, r.Cultivar, r.AreaHectares, StageDisplay, strings.ToUpper(r.StressLevel), r.LossFraction * 100, r.EstimatedLoss, r.AlertMessage}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	if err := f.SetCellValue(sheet, fmt.Sprintf("F%d", row+1), "TOTAL"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("G%d", row+1), Total(records)); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteXLSX exports the report to the given path.
func WriteXLSX(records []entities.FieldRecord, path string) error {
	f, err := BuildXLSX(records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// formatAmount renders currency with thousands separators, 2 decimals.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
