package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func sampleRows() []ApplicantRow {
	return []ApplicantRow{
		{
			Email:         "asha@example.com",
			Name:          "Asha Kulkarni",
			PRN:           "PRN001",
			ResumePath:    "uploads/resume-1.pdf",
			ApplicationID: 1,
			AppliedAt:     time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		},
		{
			Email:         "ravi@example.com",
			Name:          "Ravi Deshmukh",
			PRN:           "PRN002",
			ResumePath:    "",
			ApplicationID: 2,
			AppliedAt:     time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		},
	}
}

func TestApplicantsWorkbook(t *testing.T) {
	f, err := ApplicantsWorkbook(sampleRows())
	if err != nil {
		t.Fatalf("ApplicantsWorkbook() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Applicants" {
		t.Fatalf("sheets = %v, want only Applicants", sheets)
	}

	rows, err := f.GetRows("Applicants")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want 3 (header + 2 applicants)", len(rows))
	}

	wantHeader := []string{"Email", "Name of Student", "PRN", "Resume Path", "Application ID", "Applied Time"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}

	if rows[1][0] != "asha@example.com" || rows[1][3] != "uploads/resume-1.pdf" {
		t.Errorf("first applicant row = %v", rows[1])
	}
	if rows[2][3] != "Not Uploaded" {
		t.Errorf("missing resume rendered as %q, want Not Uploaded", rows[2][3])
	}
	if rows[1][5] != "2026-03-14 10:30:00" {
		t.Errorf("applied time = %q, want formatted timestamp", rows[1][5])
	}
}

func TestWriteApplicantsProducesReadableWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteApplicants(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteApplicants() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Applicants")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("round-tripped workbook has %d rows, want 3", len(rows))
	}
}

func TestWriteApplicantsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteApplicants(&buf, nil); err != nil {
		t.Fatalf("WriteApplicants() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Applicants")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty export has %d rows, want just the header", len(rows))
	}
}
