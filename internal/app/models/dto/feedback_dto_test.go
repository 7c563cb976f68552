package dto

import (
	"testing"
	"time"

	"github.com/campushq/placement/internal/app/models"
)

func TestGroupFeedbackByCompany(t *testing.T) {
	now := time.Now()
	entries := []*models.Feedback{
		{ID: 1, StudentName: "Asha", Company: "Acme", SubmittedAt: now},
		{ID: 2, StudentName: "Ravi", Company: "Globex", SubmittedAt: now},
		{ID: 3, StudentName: "Meera", Company: "Acme", SubmittedAt: now},
	}

	grouped := GroupFeedbackByCompany(entries)

	if len(grouped) != 2 {
		t.Fatalf("got %d groups, want 2", len(grouped))
	}
	if grouped[0].Company != "Acme" || grouped[1].Company != "Globex" {
		t.Errorf("company order = [%s, %s], want first-appearance order", grouped[0].Company, grouped[1].Company)
	}
	if len(grouped[0].Entries) != 2 {
		t.Errorf("Acme has %d entries, want 2", len(grouped[0].Entries))
	}
	if grouped[0].Entries[0].ID != 1 || grouped[0].Entries[1].ID != 3 {
		t.Errorf("Acme entry IDs = [%d, %d], want [1, 3]", grouped[0].Entries[0].ID, grouped[0].Entries[1].ID)
	}
	if len(grouped[1].Entries) != 1 || grouped[1].Entries[0].StudentName != "Ravi" {
		t.Errorf("Globex entries = %+v", grouped[1].Entries)
	}
}

func TestGroupFeedbackByCompanyEmpty(t *testing.T) {
	grouped := GroupFeedbackByCompany(nil)
	if grouped == nil {
		t.Fatal("GroupFeedbackByCompany(nil) = nil, want empty slice")
	}
	if len(grouped) != 0 {
		t.Errorf("got %d groups, want 0", len(grouped))
	}
}
