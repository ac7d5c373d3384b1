package services

import (
	"time"

	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// histogramMonths caps the monthly histogram at the six most recent
// months with activity.
const histogramMonths = 6

// JobService owns every record operation. The ownerID argument always
// comes from the verified request identity, never from client input.
type JobService interface {
	List(ownerID string) ([]models.Job, error)
	Create(ownerID string, req *dto.CreateJobRequest) (*models.Job, error)
	Get(ownerID, jobID string) (*models.Job, error)
	Update(ownerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ownerID, jobID string) error
	Stats(ownerID string) (*dto.StatsResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) List(ownerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

func (s *JobServiceImpl) Create(ownerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		JobType:     req.JobType,
		JobLocation: req.JobLocation,
		ResumeLink:  req.ResumeLink,
		CreatedBy:   ownerID,
	}
	applyJobDefaults(job)

	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Get(ownerID, jobID string) (*models.Job, error) {
	if !wellFormedID(jobID) {
		return nil, apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindByIDAndOwner(jobID, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Update applies only the provided fields, then re-runs the same
// validation as Create. Status transitions are unconstrained.
func (s *JobServiceImpl) Update(ownerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	if !wellFormedID(jobID) {
		return nil, apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindByIDAndOwner(jobID, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.JobLocation != nil {
		job.JobLocation = *req.JobLocation
	}
	if req.ResumeLink != nil {
		job.ResumeLink = *req.ResumeLink
	}

	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(ownerID, jobID string) error {
	if !wellFormedID(jobID) {
		return apperrors.ErrJobNotFound
	}

	if err := s.jobRepo.DeleteByIDAndOwner(jobID, ownerID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Stats builds the status summary and the monthly histogram for one owner.
func (s *JobServiceImpl) Stats(ownerID string) (*dto.StatsResponse, error) {
	statusRows, err := s.jobRepo.CountByStatus(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Zero-fill so the output always carries all four statuses.
	var stats dto.DefaultStats
	for _, row := range statusRows {
		switch row.Status {
		case models.JobStatusPending:
			stats.Pending = row.Count
		case models.JobStatusInterview:
			stats.Interview = row.Count
		case models.JobStatusDeclined:
			stats.Declined = row.Count
		case models.JobStatusOffer:
			stats.Offer = row.Count
		}
	}

	monthRows, err := s.jobRepo.MonthlyCounts(ownerID, histogramMonths)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Rows arrive newest first; present them oldest first.
	monthly := make([]dto.MonthlyApplication, 0, len(monthRows))
	for i := len(monthRows) - 1; i >= 0; i-- {
		row := monthRows[i]
		label := time.Date(row.Year, time.Month(row.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		monthly = append(monthly, dto.MonthlyApplication{
			Date:  label,
			Count: row.Count,
		})
	}

	return &dto.StatsResponse{
		DefaultStats:        stats,
		MonthlyApplications: monthly,
	}, nil
}

// wellFormedID reports whether id parses as a store identifier. Malformed
// ids are handled as "not found" so a probing client cannot tell a bad id
// apart from someone else's record.
func wellFormedID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func applyJobDefaults(job *models.Job) {
	if job.Status == "" {
		job.Status = models.JobStatusPending
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}
	if job.JobLocation == "" {
		job.JobLocation = models.DefaultJobLocation
	}
}

func validateJob(job *models.Job) error {
	details := make(map[string]string)

	if job.Company == "" {
		details["company"] = "This field is required"
	}
	if job.Position == "" {
		details["position"] = "This field is required"
	}
	if job.JobLocation == "" {
		details["jobLocation"] = "This field is required"
	}
	if !models.ValidJobStatus(job.Status) {
		details["status"] = "Must be one of: pending, interview, declined, offer"
	}
	if !models.ValidJobType(job.JobType) {
		details["jobType"] = "Must be one of: full-time, part-time, remote, internship"
	}

	if len(details) > 0 {
		return apperrors.ValidationError(details)
	}
	return nil
}
