package dtos

// AlertRequest upserts the saved search for an email address.
type AlertRequest struct {
	Email      string   `json:"email" binding:"required,email"`
	Keywords   []string `json:"keywords"`
	Location   string   `json:"location"`
	MinSalary  *int     `json:"minSalary" binding:"omitempty,min=0"`
	MaxSalary  *int     `json:"maxSalary" binding:"omitempty,min=0"`
	RemoteOnly bool     `json:"remoteOnly"`
}
