package services

import (
	"bytes"
	"fmt"
	"time"

	"aarohan/models"

	"github.com/xuri/excelize/v2"
)

// CaseExportSheet is the worksheet name of the case export
const CaseExportSheet = "Matters"

var caseExportHeaders = []string{
	"Case Number", "Title", "Client", "Status", "Complexity",
	"Filed", "Next Hearing", "Disposed", "Outcome", "Description",
}

// ExportCasesXLSX writes the given cases, in order, to an XLSX workbook
func ExportCasesXLSX(cases []models.CaseRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CaseExportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range caseExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(CaseExportSheet, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(CaseExportSheet, "A1", "J1", headerStyle)
	f.SetColWidth(CaseExportSheet, "A", "I", 18)
	f.SetColWidth(CaseExportSheet, "J", "J", 80)

	for i, c := range cases {
		row := []interface{}{
			c.CaseNumber,
			c.Title,
			c.ClientName,
			string(c.Status),
			string(c.Complexity),
			c.DateFiled.Format(models.DateLayout),
			formatOptionalDate(c.NextHearing),
			formatOptionalDate(c.ResolutionDate),
			c.OutcomeValue(),
			c.Description,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(CaseExportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write case %s: %w", c.CaseNumber, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(models.DateLayout)
}
