// Package export renders applicant lists as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// ApplicantRow is one exported spreadsheet row.
type ApplicantRow struct {
	Email         string
	Name          string
	PRN           string
	ResumePath    string
	ApplicationID int64
	AppliedAt     time.Time
}

const sheetName = "Applicants"

var headers = []string{"Email", "Name of Student", "PRN", "Resume Path", "Application ID", "Applied Time"}

var columnWidths = map[string]float64{
	"A": 30, // email
	"B": 25, // name
	"C": 15, // prn
	"D": 40, // resume path
	"E": 18, // application id
	"F": 25, // applied time
}

// ApplicantsWorkbook builds an xlsx workbook with one row per applicant,
// preserving the order of the input slice.
func ApplicantsWorkbook(rows []ApplicantRow) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	headerCell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := f.SetSheetRow(sheetName, headerCell, &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		resume := row.ResumePath
		if resume == "" {
			resume = "Not Uploaded"
		}
		values := []interface{}{
			row.Email,
			row.Name,
			row.PRN,
			resume,
			row.ApplicationID,
			row.AppliedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// WriteApplicants streams the workbook for the given rows to w.
func WriteApplicants(w io.Writer, rows []ApplicantRow) error {
	f, err := ApplicantsWorkbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
