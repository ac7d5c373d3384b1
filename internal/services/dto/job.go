package dto

import "jobtrack_backend/internal/models"

type CreateJobRequest struct {
	Company     string           `json:"company" validate:"required"`
	Position    string           `json:"position" validate:"required"`
	Status      models.JobStatus `json:"status" validate:"omitempty,oneof=pending interview declined offer"`
	JobType     models.JobType   `json:"jobType" validate:"omitempty,oneof=full-time part-time remote internship"`
	JobLocation string           `json:"jobLocation"`
	ResumeLink  string           `json:"resumeLink"`
}

// UpdateJobRequest carries only the fields the client actually sent;
// nil pointers leave the stored value untouched.
type UpdateJobRequest struct {
	Company     *string           `json:"company" validate:"omitempty,min=1"`
	Position    *string           `json:"position" validate:"omitempty,min=1"`
	Status      *models.JobStatus `json:"status" validate:"omitempty,oneof=pending interview declined offer"`
	JobType     *models.JobType   `json:"jobType" validate:"omitempty,oneof=full-time part-time remote internship"`
	JobLocation *string           `json:"jobLocation" validate:"omitempty,min=1"`
	ResumeLink  *string           `json:"resumeLink"`
}

// DefaultStats always carries all four statuses, zero-filled.
type DefaultStats struct {
	Pending   int64 `json:"pending"`
	Interview int64 `json:"interview"`
	Declined  int64 `json:"declined"`
	Offer     int64 `json:"offer"`
}

// MonthlyApplication is one histogram bucket, labelled like "Aug 2026".
type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	DefaultStats        DefaultStats         `json:"defaultStats"`
	MonthlyApplications []MonthlyApplication `json:"monthlyApplications"`
}
