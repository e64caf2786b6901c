package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"quote-calc/internal/service/calculation"
	"quote-calc/internal/service/quote"
	"quote-calc/internal/storage"
)

const maxSheetName = 31

type ReportStorage interface {
	GetCalculation(ctx context.Context, id string) (*storage.Calculation, error)
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

var headers = []string{
	"Part ID", "Name", "Netto [g]", "Brutto [g]", "Material", "Baking", "Cleaning", "Handling",
	"Heatshield processes", "Custom processes", "Custom curves", "Packaging", "Total cost", "Margin [%]",
	"Total + margin", "SG&A [%]", "Total + SG&A", "Annual volume", "Revenue", "Profit",
}

// GenerateExcel exports the saved calculation id, one sheet per tab. It returns
// the workbook and a file name for it.
func (s *ReportService) GenerateExcel(ctx context.Context, id string) ([]byte, string, error) {
	calc, err := s.storage.GetCalculation(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("fetch calculation: %w", err)
	}

	data, err := Workbook(calc)
	if err != nil {
		return nil, "", err
	}

	return data, FileName(calc), nil
}

// Workbook renders c as XLSX. Items without results are listed with empty
// cost columns.
func Workbook(c *storage.Calculation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("total style: %w", err)
	}

	summary := quote.Summarize(c)
	used := map[string]bool{}

	tabs := c.Tabs
	if len(tabs) == 0 {
		// an empty workbook still needs one sheet
		tabs = []calculation.Tab{{Name: c.Name}}
		summary.Tabs = []quote.TabSummary{{}}
	}

	for i, tab := range tabs {
		sheet := sheetName(tab.Name, i, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", sheet, err)
		}

		for col, name := range headers {
			f.SetCellValue(sheet, cellName(col+1, 1), name)
		}
		f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

		for j, it := range tab.Items {
			writeItem(f, sheet, j+2, it)
		}

		totalRow := len(tab.Items) + 2
		ts := summary.Tabs[i]
		f.SetCellValue(sheet, cellName(1, totalRow), "Total")
		f.SetCellValue(sheet, cellName(2, totalRow), fmt.Sprintf("%d/%d priced", ts.Priced, ts.Items))
		f.SetCellValue(sheet, cellName(19, totalRow), ts.Revenue)
		f.SetCellValue(sheet, cellName(20, totalRow), ts.Profit)
		f.SetCellStyle(sheet, cellName(1, totalRow), cellName(len(headers), totalRow), totalStyle)

		f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
		})
		f.SetColWidth(sheet, "A", "B", 20)
		f.SetColWidth(sheet, "C", "T", 14)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeItem(f *excelize.File, sheet string, row int, it calculation.Item) {
	f.SetCellValue(sheet, cellName(1, row), it.PartID)
	f.SetCellValue(sheet, cellName(2, row), it.Name)
	f.SetCellValue(sheet, cellName(14, row), it.Margin.Float())
	f.SetCellValue(sheet, cellName(18, row), it.AnnualVolume.Float())

	r := it.Results
	if r == nil {
		return
	}

	var heatshield float64
	if h := r.Heatshield; h != nil {
		heatshield = h.PrepCost + h.LaserCost + h.BendingCost + h.JoiningCost + h.GluingCost
	}

	values := map[int]float64{
		3:  r.NettoWeight,
		4:  r.BruttoWeight,
		5:  r.MaterialCost,
		6:  r.BakingCost,
		7:  r.CleaningCost,
		8:  r.HandlingCost,
		9:  heatshield,
		10: r.CustomProcessesCost,
		11: r.CustomCurvesCost,
		12: r.PackagingCost,
		13: r.TotalCost,
		15: r.TotalWithMargin,
		16: r.SGA,
		17: r.TotalWithSGA,
		19: it.Revenue(),
		20: it.Profit(),
	}
	for col, v := range values {
		f.SetCellValue(sheet, cellName(col, row), v)
	}
}

// sheetName makes a unique sheet name excel accepts.
func sheetName(name string, idx int, used map[string]bool) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = fmt.Sprintf("Tab %d", idx+1)
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}

	base := name
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(base)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

// FileName is the download name of the export of c.
func FileName(c *storage.Calculation) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, c.Name)
	if name == "" {
		name = c.ID
	}
	return "quote_" + name + ".xlsx"
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
