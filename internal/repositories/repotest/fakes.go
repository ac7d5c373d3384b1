// Package repotest provides in-memory repository implementations for
// service and handler tests. They honor the same contracts as the GORM
// implementations: owner scoping, sentinel errors, result ordering.
package repotest

import (
	"sort"
	"sync"
	"time"

	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]models.User)}
}

func (r *InMemoryUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *InMemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}

	stored.Name = user.Name
	stored.Email = user.Email
	stored.CustomFields = user.CustomFields
	stored.UpdatedAt = time.Now()
	r.users[user.ID] = stored
	return nil
}

type InMemoryJobRepository struct {
	mu   sync.Mutex
	jobs map[string]models.Job
}

func NewInMemoryJobRepository() *InMemoryJobRepository {
	return &InMemoryJobRepository{jobs: make(map[string]models.Job)}
}

func (r *InMemoryJobRepository) FindByOwner(ownerID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []models.Job
	for _, job := range r.jobs {
		if job.CreatedBy == ownerID {
			jobs = append(jobs, job)
		}
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (r *InMemoryJobRepository) FindByIDAndOwner(id, ownerID string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok || job.CreatedBy != ownerID {
		return nil, repositories.ErrJobNotFound
	}
	return &job, nil
}

func (r *InMemoryJobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.UpdatedAt = job.CreatedAt

	r.jobs[job.ID] = *job
	return nil
}

func (r *InMemoryJobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.jobs[job.ID]
	if !ok || stored.CreatedBy != job.CreatedBy {
		return repositories.ErrJobNotFound
	}

	stored.Company = job.Company
	stored.Position = job.Position
	stored.Status = job.Status
	stored.JobType = job.JobType
	stored.JobLocation = job.JobLocation
	stored.ResumeLink = job.ResumeLink
	stored.UpdatedAt = time.Now()
	r.jobs[job.ID] = stored
	return nil
}

func (r *InMemoryJobRepository) DeleteByIDAndOwner(id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok || job.CreatedBy != ownerID {
		return repositories.ErrJobNotFound
	}

	delete(r.jobs, id)
	return nil
}

func (r *InMemoryJobRepository) CountByStatus(ownerID string) ([]repositories.StatusCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[models.JobStatus]int64)
	for _, job := range r.jobs {
		if job.CreatedBy == ownerID {
			counts[job.Status]++
		}
	}

	var rows []repositories.StatusCount
	for status, count := range counts {
		rows = append(rows, repositories.StatusCount{Status: status, Count: count})
	}
	return rows, nil
}

func (r *InMemoryJobRepository) MonthlyCounts(ownerID string, limit int) ([]repositories.MonthlyCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type bucket struct {
		year  int
		month int
	}
	counts := make(map[bucket]int64)
	for _, job := range r.jobs {
		if job.CreatedBy == ownerID {
			b := bucket{year: job.CreatedAt.Year(), month: int(job.CreatedAt.Month())}
			counts[b]++
		}
	}

	var rows []repositories.MonthlyCount
	for b, count := range counts {
		rows = append(rows, repositories.MonthlyCount{Year: b.year, Month: b.month, Count: count})
	}

	// Newest first, as the SQL implementation orders.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year > rows[j].Year
		}
		return rows[i].Month > rows[j].Month
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
