package dtos

type ApplicationRequest struct {
	JobID          string `json:"jobId" binding:"required"`
	ApplicantEmail string `json:"applicantEmail" binding:"required,email"`
	ApplicantName  string `json:"applicantName" binding:"required"`
	CoverLetter    string `json:"coverLetter"`
	ResumeURL      string `json:"resumeUrl" binding:"omitempty,url"`
}

type FavoriteRequest struct {
	JobID     string `json:"jobId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}
