package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    []byte `json:"-"`
	CompanyName string `json:"company_name,omitempty"`
	Role        string `gorm:"default:'company'" json:"role"`
}

type Job struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title        string         `gorm:"not null" json:"title"`
	Company      string         `gorm:"not null" json:"company"`
	Description  string         `gorm:"type:text" json:"description"`
	Requirements string         `gorm:"type:text" json:"requirements"`
	SalaryMin    *int           `json:"salary_min,omitempty"`
	SalaryMax    *int           `json:"salary_max,omitempty"`
	Location     string         `json:"location"`
	Remote       bool           `json:"remote"`
	Technologies pq.StringArray `gorm:"type:text[]" json:"technologies"`

	EmploymentType  EmploymentType  `gorm:"default:'full-time'" json:"employment_type"`
	ExperienceLevel ExperienceLevel `gorm:"default:'mid'" json:"experience_level"`

	// PostedBy is nil for anonymous postings. Anonymous listings have no
	// owner and can never be updated or deleted through the API.
	PostedBy *string   `json:"posted_by,omitempty"`
	Status   JobStatus `gorm:"default:'pending'" json:"status"`
}

type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID string `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	// Association: filled via Preload for the joined display fields.
	Job Job `json:"job"`

	ApplicantEmail string            `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_email"`
	ApplicantName  string            `gorm:"not null" json:"applicant_name"`
	CoverLetter    string            `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeURL      string            `json:"resume_url,omitempty"`
	Status         ApplicationStatus `gorm:"default:'pending'" json:"status"`
}

type Favorite struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserEmail string `gorm:"not null;uniqueIndex:idx_user_job" json:"user_email"`
	JobID     string `gorm:"not null;uniqueIndex:idx_user_job" json:"job_id"`
	Job       Job    `json:"job"`
}

// EmailAlert holds one saved search per email address. Unsubscribing flips
// Active to false instead of deleting the row.
type EmailAlert struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Keywords   pq.StringArray `gorm:"type:text[]" json:"keywords"`
	Location   string         `json:"location,omitempty"`
	MinSalary  *int           `json:"min_salary,omitempty"`
	MaxSalary  *int           `json:"max_salary,omitempty"`
	RemoteOnly bool           `json:"remote_only"`
	Active     bool           `gorm:"default:true" json:"active"`
}
