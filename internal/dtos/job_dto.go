package dtos

// JobRequest is the payload for creating a listing and for updating one.
// Updates replace the full mutable field set, so the same shape serves both.
type JobRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`

	// Optional fields
	Requirements    string   `json:"requirements"`
	SalaryMin       *int     `json:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax       *int     `json:"salaryMax" binding:"omitempty,min=0"`
	Remote          bool     `json:"remote"`
	Technologies    []string `json:"technologies"`
	EmploymentType  string   `json:"employmentType" binding:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel string   `json:"experienceLevel" binding:"omitempty,oneof=entry mid senior lead"`
}
