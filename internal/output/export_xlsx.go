package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aurceive/d2-crafting-cost/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	SheetTotals  = "Totals"
	SheetSources = "Sources"
	SheetSteps   = "Steps"
)

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}

// DefaultXLSXPath names the workbook after the date and the level range.
func DefaultXLSXPath(outDir string, cfg domain.Configuration, now time.Time) string {
	// yearmonthday
	timestamp := now.Format("20060102")
	return filepath.Join(outDir, fmt.Sprintf("%s_crafting_cost_%d-%d.xlsx", timestamp, cfg.StartLevel, cfg.EndLevel))
}

// ExportPlanXLSX writes plan to path, creating the parent directory if needed.
func ExportPlanXLSX(path string, plan domain.Plan) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	writeHeader := func(sheet string, headers ...string) error {
		for i, h := range headers {
			if err := f.SetCellValue(sheet, cell(i+1, 1), h); err != nil {
				return err
			}
		}
		return f.SetCellStyle(sheet, "A1", cell(len(headers), 1), headerStyleID)
	}

	// Totals
	if err := f.SetSheetName("Sheet1", SheetTotals); err != nil {
		return err
	}
	if err := writeHeader(SheetTotals, "Resource", "Amount", "Icon"); err != nil {
		return err
	}
	for i, c := range plan.Totals {
		row := i + 2
		icon, _ := domain.Icon(c.Resource)
		f.SetCellValue(SheetTotals, cell(1, row), c.Resource.String())
		f.SetCellValue(SheetTotals, cell(2, row), c.Cost)
		f.SetCellValue(SheetTotals, cell(3, row), icon)
	}

	// Sources
	if _, err := f.NewSheet(SheetSources); err != nil {
		return err
	}
	if err := writeHeader(SheetSources, "Resource", "Source", "Yield", "Uses"); err != nil {
		return err
	}
	row := 2
	for _, rs := range plan.Sources {
		for _, s := range rs.Sources {
			f.SetCellValue(SheetSources, cell(1, row), rs.Resource.String())
			f.SetCellValue(SheetSources, cell(2, row), s.Source.Source)
			f.SetCellValue(SheetSources, cell(3, row), s.Source.Amount)
			f.SetCellValue(SheetSources, cell(4, row), s.Amount)
			row++
		}
	}

	// Steps: one column per resource, in the order the totals list them.
	if len(plan.Steps) > 0 {
		if _, err := f.NewSheet(SheetSteps); err != nil {
			return err
		}
		headers := []string{"Level"}
		for _, c := range plan.Totals {
			headers = append(headers, c.Resource.String())
		}
		if err := writeHeader(SheetSteps, headers...); err != nil {
			return err
		}
		for i, s := range plan.Steps {
			r := i + 2
			f.SetCellValue(SheetSteps, cell(1, r), s.Level)
			for j, t := range plan.Totals {
				for _, c := range s.Costs {
					if c.Resource == t.Resource {
						f.SetCellValue(SheetSteps, cell(j+2, r), c.Cost)
					}
				}
			}
		}
	}

	if err := f.SetColWidth(SheetTotals, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSources, "A", "B", 22); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx %s: %w", path, err)
	}
	return nil
}
