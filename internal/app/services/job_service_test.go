package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/pkg/apperrors"
)

func newJobFixture(t *testing.T) (*JobService, *fakeJobStore, *fakeApplicationStore) {
	t.Helper()
	jobs := newFakeJobStore()
	apps := newFakeApplicationStore()
	svc := NewJobService(jobs, apps, 14*24*time.Hour, zerolog.Nop())
	return svc, jobs, apps
}

func jobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:            "Software Engineer",
		JobCode:          "SE-01",
		Company:          "Acme Corp",
		AboutCompany:     "Makes everything",
		Description:      "Backend role",
		Location:         "Pune",
		Compensation:     "8 LPA",
		EligibleBranches: []string{"Computer Engineering"},
		MinTenth:         60,
		MinTwelfth:       60,
		MinEngineering:   60,
		MaxBacklogs:      0,
	}
}

func TestCreateJobDefaultExpiry(t *testing.T) {
	svc, _, _ := newJobFixture(t)

	before := time.Now().Add(14 * 24 * time.Hour)
	job, err := svc.CreateJob(context.Background(), jobRequest())
	if err != nil {
		t.Fatalf("CreateJob() error = %v", err)
	}
	after := time.Now().Add(14 * 24 * time.Hour)

	if job.ExpiresAt.Before(before) || job.ExpiresAt.After(after) {
		t.Errorf("ExpiresAt = %v, want about 14 days from now", job.ExpiresAt)
	}
}

func TestCreateJobExplicitExpiry(t *testing.T) {
	svc, _, _ := newJobFixture(t)

	expiry := time.Now().Add(48 * time.Hour)
	req := jobRequest()
	req.ExpiresAt = &expiry

	job, err := svc.CreateJob(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateJob() error = %v", err)
	}
	if !job.ExpiresAt.Equal(expiry) {
		t.Errorf("ExpiresAt = %v, want %v", job.ExpiresAt, expiry)
	}
}

func TestCreateJobPastExpiryRejected(t *testing.T) {
	svc, _, _ := newJobFixture(t)

	expiry := time.Now().Add(-time.Hour)
	req := jobRequest()
	req.ExpiresAt = &expiry

	_, err := svc.CreateJob(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("CreateJob() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestGetJobHidesExpiredFromStudents(t *testing.T) {
	svc, jobs, _ := newJobFixture(t)
	ctx := context.Background()

	job := openJob()
	job.ExpiresAt = time.Now().Add(-time.Hour)
	if err := jobs.Create(ctx, job); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetJob(ctx, job.ID, false); !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("GetJob(student) error = %v, want %v", err, apperrors.ErrJobNotFound)
	}

	if _, err := svc.GetJob(ctx, job.ID, true); err != nil {
		t.Errorf("GetJob(admin) error = %v, want nil", err)
	}
}

func TestListJobsForStudentFiltersFeed(t *testing.T) {
	svc, jobs, apps := newJobFixture(t)
	ctx := context.Background()

	student := completeStudent()
	student.ID = 1

	open := openJob()
	if err := jobs.Create(ctx, open); err != nil {
		t.Fatal(err)
	}

	expired := openJob()
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	if err := jobs.Create(ctx, expired); err != nil {
		t.Fatal(err)
	}

	alreadyApplied := openJob()
	if err := jobs.Create(ctx, alreadyApplied); err != nil {
		t.Fatal(err)
	}
	err := apps.Create(ctx, &models.Application{
		JobID:          alreadyApplied.ID,
		UserID:         student.ID,
		JobTitle:       alreadyApplied.Title,
		ApplicantName:  student.Name,
		ApplicantEmail: student.Email,
		ApplicantPRN:   student.PRN,
		ResumePath:     *student.ResumePath,
	})
	if err != nil {
		t.Fatal(err)
	}

	feed, err := svc.ListJobsForStudent(ctx, student)
	if err != nil {
		t.Fatalf("ListJobsForStudent() error = %v", err)
	}

	if len(feed) != 1 {
		t.Fatalf("feed has %d jobs, want 1", len(feed))
	}
	if feed[0].ID != open.ID {
		t.Errorf("feed contains job %d, want %d", feed[0].ID, open.ID)
	}
}

func TestListJobsForStudentKeepsIneligibleJobsVisible(t *testing.T) {
	svc, jobs, _ := newJobFixture(t)
	ctx := context.Background()

	student := completeStudent()
	student.ID = 1

	wrongBranch := openJob()
	wrongBranch.EligibleBranches = []string{"Civil Engineering"}
	if err := jobs.Create(ctx, wrongBranch); err != nil {
		t.Fatal(err)
	}

	feed, err := svc.ListJobsForStudent(ctx, student)
	if err != nil {
		t.Fatalf("ListJobsForStudent() error = %v", err)
	}

	// Ineligibility surfaces on apply, not by hiding the posting.
	if len(feed) != 1 {
		t.Fatalf("feed has %d jobs, want 1", len(feed))
	}
	if feed[0].ID != wrongBranch.ID {
		t.Errorf("feed contains job %d, want %d", feed[0].ID, wrongBranch.ID)
	}
}

func TestDeleteExpiredJobs(t *testing.T) {
	_, jobs, _ := newJobFixture(t)
	ctx := context.Background()

	fresh := openJob()
	if err := jobs.Create(ctx, fresh); err != nil {
		t.Fatal(err)
	}
	stale := openJob()
	stale.ExpiresAt = time.Now().Add(-time.Hour)
	if err := jobs.Create(ctx, stale); err != nil {
		t.Fatal(err)
	}

	deleted, err := jobs.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeleteExpired() = %d, want 1", deleted)
	}

	remaining, err := jobs.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != fresh.ID {
		t.Errorf("remaining jobs = %v, want only the fresh posting", remaining)
	}
}
