package services

import (
	"context"
	"sync"
	"time"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/pkg/apperrors"
)

// In-memory stores backing the service tests. They enforce the same
// uniqueness rules as the database schema.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) SetPlaced(_ context.Context, userID int64, placed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok || u.RoleType != models.RoleStudent {
		return apperrors.ErrUserNotFound
	}
	u.Placed = placed
	return nil
}

func (f *fakeUserStore) ListStudents(_ context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var students []*models.User
	for _, u := range f.users {
		if u.RoleType == models.RoleStudent {
			clone := *u
			students = append(students, &clone)
		}
	}
	return students, nil
}

type fakeJobStore struct {
	mu     sync.Mutex
	nextID int64
	jobs   map[int64]*models.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[int64]*models.Job)}
}

func (f *fakeJobStore) Create(_ context.Context, job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	job.ID = f.nextID
	job.CreatedAt = time.Now()
	clone := *job
	f.jobs[job.ID] = &clone
	return nil
}

func (f *fakeJobStore) GetByID(_ context.Context, id int64) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (f *fakeJobStore) ListActive(_ context.Context) ([]*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var jobs []*models.Job
	for _, j := range f.jobs {
		if j.ExpiresAt.After(now) {
			clone := *j
			jobs = append(jobs, &clone)
		}
	}
	return jobs, nil
}

func (f *fakeJobStore) ListAll(_ context.Context) ([]*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var jobs []*models.Job
	for _, j := range f.jobs {
		clone := *j
		jobs = append(jobs, &clone)
	}
	return jobs, nil
}

func (f *fakeJobStore) DeleteExpired(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var deleted int64
	for id, j := range f.jobs {
		if !j.ExpiresAt.After(now) {
			delete(f.jobs, id)
			deleted++
		}
	}
	return deleted, nil
}

type appKey struct {
	jobID  int64
	userID int64
}

type fakeApplicationStore struct {
	mu     sync.Mutex
	nextID int64
	apps   map[appKey]*models.Application
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[appKey]*models.Application)}
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := appKey{jobID: app.JobID, userID: app.UserID}
	if _, ok := f.apps[key]; ok {
		return apperrors.ErrDuplicateApplication
	}
	f.nextID++
	app.ID = f.nextID
	app.AppliedAt = time.Now()
	clone := *app
	f.apps[key] = &clone
	return nil
}

func (f *fakeApplicationStore) ExistsByJobAndUser(_ context.Context, jobID, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.apps[appKey{jobID: jobID, userID: userID}]
	return ok, nil
}

func (f *fakeApplicationStore) ListByUser(_ context.Context, userID int64) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var apps []*models.Application
	for _, a := range f.apps {
		if a.UserID == userID {
			clone := *a
			apps = append(apps, &clone)
		}
	}
	return apps, nil
}

func (f *fakeApplicationStore) ListJobIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for _, a := range f.apps {
		if a.UserID == userID {
			ids = append(ids, a.JobID)
		}
	}
	return ids, nil
}

func (f *fakeApplicationStore) ListByJob(_ context.Context, jobID int64) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var apps []*models.Application
	for _, a := range f.apps {
		if a.JobID == jobID {
			clone := *a
			apps = append(apps, &clone)
		}
	}
	return apps, nil
}

type fakeFeedbackStore struct {
	mu      sync.Mutex
	nextID  int64
	entries map[int64]*models.Feedback
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{entries: make(map[int64]*models.Feedback)}
}

func (f *fakeFeedbackStore) Create(_ context.Context, fb *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[fb.StudentID]; ok {
		return apperrors.ErrDuplicateFeedback
	}
	f.nextID++
	fb.ID = f.nextID
	fb.SubmittedAt = time.Now()
	clone := *fb
	f.entries[fb.StudentID] = &clone
	return nil
}

func (f *fakeFeedbackStore) GetByStudent(_ context.Context, studentID int64) (*models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fb, ok := f.entries[studentID]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	clone := *fb
	return &clone, nil
}

func (f *fakeFeedbackStore) ListAll(_ context.Context) ([]*models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entries []*models.Feedback
	for _, fb := range f.entries {
		clone := *fb
		entries = append(entries, &clone)
	}
	return entries, nil
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*models.RefreshToken)}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tokens[token]; ok {
		return apperrors.ErrTokenInvalid
	}
	f.tokens[token] = &models.RefreshToken{
		Token:      token,
		UserID:     userID,
		ExpiryDate: expiryDate,
		CreatedAt:  time.Now(),
	}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if rt.IsRevoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	if rt.ExpiryDate.Before(time.Now()) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return rt.UserID, rt.ExpiryDate, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rt.IsRevoked = true
	return nil
}

func (f *fakeTokenStore) RevokeAllUserTokens(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rt := range f.tokens {
		if rt.UserID == userID {
			rt.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeTokenStore) CleanupExpiredTokens(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var deleted int64
	for token, rt := range f.tokens {
		if rt.ExpiryDate.Before(now) {
			delete(f.tokens, token)
			deleted++
		}
	}
	return deleted, nil
}
