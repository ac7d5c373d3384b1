package repositories

import (
	"errors"

	"jobtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// StatusCount is one GROUP BY status row.
type StatusCount struct {
	Status models.JobStatus
	Count  int64
}

// MonthlyCount is one GROUP BY (year, month) row of creation activity.
type MonthlyCount struct {
	Year  int
	Month int
	Count int64
}

// JobRepository scopes every lookup, update and delete to the owning user.
// A record owned by someone else surfaces as ErrJobNotFound, never as a
// distinct "forbidden" condition.
type JobRepository interface {
	FindByOwner(ownerID string) ([]models.Job, error)
	FindByIDAndOwner(id, ownerID string) (*models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	DeleteByIDAndOwner(id, ownerID string) error

	CountByStatus(ownerID string) ([]StatusCount, error)
	MonthlyCounts(ownerID string, limit int) ([]MonthlyCount, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByOwner(ownerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByIDAndOwner(id, ownerID string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND created_by = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ? AND created_by = ?", job.ID, job.CreatedBy).
		Updates(map[string]interface{}{
			"company":      job.Company,
			"position":     job.Position,
			"status":       job.Status,
			"job_type":     job.JobType,
			"job_location": job.JobLocation,
			"resume_link":  job.ResumeLink,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeleteByIDAndOwner(id, ownerID string) error {
	result := r.db.Where("id = ? AND created_by = ?", id, ownerID).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CountByStatus(ownerID string) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&models.Job{}).
		Select("status, COUNT(*) AS count").
		Where("created_by = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// MonthlyCounts returns up to limit most recent months with activity,
// newest first. Months without records produce no row.
func (r *JobRepositoryImpl) MonthlyCounts(ownerID string, limit int) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.Model(&models.Job{}).
		Select("EXTRACT(YEAR FROM created_at)::int AS year, EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count").
		Where("created_by = ?", ownerID).
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
