package models

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusInterview JobStatus = "interview"
	JobStatusDeclined  JobStatus = "declined"
	JobStatusOffer     JobStatus = "offer"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

// DefaultJobLocation mirrors the schema default applied when a submission
// omits the location.
const DefaultJobLocation = "my city"

// Job is one application record. CreatedBy is immutable after creation
// and every query over jobs is scoped to it.
type Job struct {
	BaseModel
	Company     string    `gorm:"not null" json:"company"`
	Position    string    `gorm:"not null" json:"position"`
	Status      JobStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	JobType     JobType   `gorm:"type:varchar(20);default:'full-time'" json:"jobType"`
	JobLocation string    `gorm:"not null" json:"jobLocation"`
	ResumeLink  string    `json:"resumeLink"`
	CreatedBy   string    `gorm:"type:uuid;not null;index" json:"createdBy"`
}

func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusPending, JobStatusInterview, JobStatusDeclined, JobStatusOffer:
		return true
	}
	return false
}

func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship:
		return true
	}
	return false
}
