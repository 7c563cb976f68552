// Package eligibility decides whether a student's academic record satisfies
// a posting's requirements. The check is pure so it can be evaluated
// anywhere a user and a job are in hand.
package eligibility

import (
	"fmt"
	"strings"
)

// Candidate holds the academic fields of a student relevant to screening.
// All values must be present; callers gate on profile completeness first.
type Candidate struct {
	Branch                string
	TenthPercentage       float64
	TwelfthPercentage     float64
	EngineeringPercentage float64
	ActiveBacklogs        int
}

// Requirements holds the screening thresholds of a posting
type Requirements struct {
	EligibleBranches []string
	MinTenth         float64
	MinTwelfth       float64
	MinEngineering   float64
	MaxBacklogs      int
}

// Result reports the outcome of a check. Reason is empty when eligible.
type Result struct {
	Eligible bool
	Reason   string
}

// Ineligibility reasons. Checks run in a fixed order and stop at the first
// failure, so a candidate failing several criteria still gets one reason.
const (
	ReasonBranch   = "Your branch is not eligible for this job"
	ReasonAcademic = "Your academic scores do not meet the requirements"
)

// Check evaluates the candidate against the requirements. Branch membership
// is checked first, then the three percentages, then backlogs. Meeting a
// threshold exactly passes; only exceeding the backlog limit fails.
func Check(c Candidate, r Requirements) Result {
	if !branchEligible(c.Branch, r.EligibleBranches) {
		return Result{Reason: ReasonBranch}
	}

	if c.TenthPercentage < r.MinTenth ||
		c.TwelfthPercentage < r.MinTwelfth ||
		c.EngineeringPercentage < r.MinEngineering {
		return Result{Reason: ReasonAcademic}
	}

	if c.ActiveBacklogs > r.MaxBacklogs {
		return Result{Reason: backlogReason(r.MaxBacklogs)}
	}

	return Result{Eligible: true}
}

// branchEligible matches the candidate's branch case-insensitively against
// the posting's list
func branchEligible(branch string, eligible []string) bool {
	for _, b := range eligible {
		if strings.EqualFold(strings.TrimSpace(b), strings.TrimSpace(branch)) {
			return true
		}
	}
	return false
}

func backlogReason(max int) string {
	return fmt.Sprintf("You have more than %d active backlogs", max)
}
