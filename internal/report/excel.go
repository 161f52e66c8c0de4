package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	candidatesSheet = "Ranked Candidates"
	breakdownSheet  = "Breakdown"
)

// Score tiers and their fill colors for the ranked sheet.
var tierFills = []struct {
	floor int
	color string
}{
	{90, "C6EFCE"},
	{70, "FFEB9C"},
	{50, "FFC7CE"},
	{0, "FF9999"},
}

// ExportExcel writes the report as a three-sheet workbook: a summary,
// the ranked candidate table and the per-section breakdown.
func (r *Report) ExportExcel(outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := r.writeSummary(f, headerStyle); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}
	if err := r.writeCandidates(f, headerStyle); err != nil {
		return fmt.Errorf("candidates sheet: %w", err)
	}
	if err := r.writeBreakdown(f, headerStyle); err != nil {
		return fmt.Errorf("breakdown sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func (r *Report) writeSummary(f *excelize.File, headerStyle int) error {
	f.SetColWidth(summarySheet, "A", "A", 25)
	f.SetColWidth(summarySheet, "B", "B", 50)

	f.SetCellValue(summarySheet, "A1", "Resume Evaluation Report")
	f.SetCellStyle(summarySheet, "A1", "B1", headerStyle)
	f.MergeCell(summarySheet, "A1", "B1")

	scored := 0
	best := 0
	total := 0
	for _, item := range r.Items {
		if item.Err != "" {
			continue
		}
		scored++
		total += item.Result.TotalScore
		if item.Result.TotalScore > best {
			best = item.Result.TotalScore
		}
	}

	rows := [][2]any{
		{"Job Title:", r.JobTitle},
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Resumes Processed:", len(r.Items)},
		{"Resumes Scored:", scored},
		{"Resumes Failed:", len(r.Failed())},
		{"Highest Score:", best},
	}
	if scored > 0 {
		rows = append(rows, [2]any{"Average Score:", fmt.Sprintf("%.1f", float64(total)/float64(scored))})
	}

	for i, row := range rows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+3), row[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+3), row[1])
	}
	return nil
}

func (r *Report) writeCandidates(f *excelize.File, headerStyle int) error {
	f.SetColWidth(candidatesSheet, "A", "A", 8)
	f.SetColWidth(candidatesSheet, "B", "C", 30)
	f.SetColWidth(candidatesSheet, "D", "H", 14)

	headers := []string{"Rank", "Candidate", "File", "Total", "Core Impact", "Skills", "Evidence", "Presentation"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(candidatesSheet, cell, header)
		f.SetCellStyle(candidatesSheet, cell, cell, headerStyle)
	}

	styles := make(map[string]int, len(tierFills))
	for _, tier := range tierFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{tier.color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		styles[tier.color] = style
	}

	for i, item := range r.Items {
		row := i + 2
		f.SetCellValue(candidatesSheet, fmt.Sprintf("A%d", row), item.Rank)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("B%d", row), item.Name)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("C%d", row), item.File)

		if item.Err != "" {
			f.SetCellValue(candidatesSheet, fmt.Sprintf("D%d", row), "failed: "+item.Err)
			continue
		}

		f.SetCellValue(candidatesSheet, fmt.Sprintf("D%d", row), item.Result.TotalScore)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("E%d", row), item.Result.CoreImpactScore)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("F%d", row), item.Result.SkillAlignmentScore)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("G%d", row), item.Result.EvidenceScore)
		f.SetCellValue(candidatesSheet, fmt.Sprintf("H%d", row), item.Result.PresentationScore)

		for _, tier := range tierFills {
			if item.Result.TotalScore >= tier.floor {
				f.SetCellStyle(candidatesSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), styles[tier.color])
				break
			}
		}
	}

	if len(r.Items) > 0 {
		if err := f.AutoFilter(candidatesSheet, fmt.Sprintf("A1:H%d", len(r.Items)+1), nil); err != nil {
			return err
		}
	}

	return f.SetPanes(candidatesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (r *Report) writeBreakdown(f *excelize.File, headerStyle int) error {
	f.SetColWidth(breakdownSheet, "A", "A", 8)
	f.SetColWidth(breakdownSheet, "B", "B", 30)
	f.SetColWidth(breakdownSheet, "C", "C", 30)
	f.SetColWidth(breakdownSheet, "D", "F", 12)

	headers := []string{"Rank", "Candidate", "Section", "Points", "Raw Points", "Max"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(breakdownSheet, cell, header)
		f.SetCellStyle(breakdownSheet, cell, cell, headerStyle)
	}

	row := 2
	for _, item := range r.Items {
		if item.Err != "" {
			continue
		}
		for _, name := range sectionOrder {
			section, ok := item.Result.Breakdown[name]
			if !ok {
				continue
			}
			f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), item.Rank)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), item.Name)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("C%d", row), section.Name)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("D%d", row), section.Points)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("E%d", row), section.RawPoints)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("F%d", row), section.Max)
			row++
		}
	}

	return f.SetPanes(breakdownSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
