package eligibility

import (
	"strings"
	"testing"
)

func baseCandidate() Candidate {
	return Candidate{
		Branch:                "Computer Engineering",
		TenthPercentage:       85,
		TwelfthPercentage:     80,
		EngineeringPercentage: 75,
		ActiveBacklogs:        0,
	}
}

func baseRequirements() Requirements {
	return Requirements{
		EligibleBranches: []string{"Computer Engineering", "IT"},
		MinTenth:         60,
		MinTwelfth:       60,
		MinEngineering:   60,
		MaxBacklogs:      0,
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		mutateC      func(*Candidate)
		mutateR      func(*Requirements)
		wantEligible bool
		wantReason   string
	}{
		{
			name:         "eligible candidate",
			wantEligible: true,
		},
		{
			name:       "branch not listed",
			mutateC:    func(c *Candidate) { c.Branch = "Mechanical Engineering" },
			wantReason: ReasonBranch,
		},
		{
			name:         "branch match is case insensitive",
			mutateC:      func(c *Candidate) { c.Branch = "computer engineering" },
			wantEligible: true,
		},
		{
			name:         "branch match ignores surrounding whitespace",
			mutateC:      func(c *Candidate) { c.Branch = " Computer Engineering " },
			wantEligible: true,
		},
		{
			name:       "tenth below minimum",
			mutateC:    func(c *Candidate) { c.TenthPercentage = 59.9 },
			wantReason: ReasonAcademic,
		},
		{
			name:       "twelfth below minimum",
			mutateC:    func(c *Candidate) { c.TwelfthPercentage = 40 },
			wantReason: ReasonAcademic,
		},
		{
			name:       "engineering below minimum",
			mutateC:    func(c *Candidate) { c.EngineeringPercentage = 59.99 },
			wantReason: ReasonAcademic,
		},
		{
			name: "exact threshold passes",
			mutateC: func(c *Candidate) {
				c.TenthPercentage = 60
				c.TwelfthPercentage = 60
				c.EngineeringPercentage = 60
			},
			wantEligible: true,
		},
		{
			name:       "backlogs over limit",
			mutateC:    func(c *Candidate) { c.ActiveBacklogs = 1 },
			wantReason: "You have more than 0 active backlogs",
		},
		{
			name:         "backlogs at limit pass",
			mutateC:      func(c *Candidate) { c.ActiveBacklogs = 2 },
			mutateR:      func(r *Requirements) { r.MaxBacklogs = 2 },
			wantEligible: true,
		},
		{
			name: "branch failure reported before academic failure",
			mutateC: func(c *Candidate) {
				c.Branch = "Civil Engineering"
				c.TenthPercentage = 10
			},
			wantReason: ReasonBranch,
		},
		{
			name: "academic failure reported before backlog failure",
			mutateC: func(c *Candidate) {
				c.TwelfthPercentage = 10
				c.ActiveBacklogs = 5
			},
			wantReason: ReasonAcademic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseCandidate()
			r := baseRequirements()
			if tt.mutateC != nil {
				tt.mutateC(&c)
			}
			if tt.mutateR != nil {
				tt.mutateR(&r)
			}

			got := Check(c, r)
			if got.Eligible != tt.wantEligible {
				t.Fatalf("Check() eligible = %v, want %v (reason %q)", got.Eligible, tt.wantEligible, got.Reason)
			}
			if tt.wantEligible && got.Reason != "" {
				t.Errorf("Check() reason = %q, want empty for eligible result", got.Reason)
			}
			if !tt.wantEligible && got.Reason != tt.wantReason {
				t.Errorf("Check() reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestBacklogReasonMentionsLimit(t *testing.T) {
	c := baseCandidate()
	c.ActiveBacklogs = 4
	r := baseRequirements()
	r.MaxBacklogs = 3

	got := Check(c, r)
	if got.Eligible {
		t.Fatal("Check() = eligible, want ineligible")
	}
	if !strings.Contains(got.Reason, "3") {
		t.Errorf("Check() reason = %q, want the backlog limit mentioned", got.Reason)
	}
}
