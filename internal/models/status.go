// Moderation and intake status enums. Values mirror the text columns in
// PostgreSQL and the JSON payloads, so they stay lowercase strings.
package models

import "fmt"

// JobStatus gates public visibility of a listing.
//
//	pending  — awaiting moderation, hidden from search
//	approved — publicly visible and searchable
//	rejected — terminal, hidden
type JobStatus string

const (
	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusRejected JobStatus = "rejected"
)

// ParseJobStatus converts a raw string to a JobStatus, returning an error
// for unknown values.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case JobStatusPending, JobStatusApproved, JobStatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// Visible reports whether a listing may appear in public search results.
func (s JobStatus) Visible() bool { return s == JobStatusApproved }

// ApplicationStatus tracks a candidate submission. Candidates only ever
// create applications at pending; later states are set by reviewers.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// EmploymentType is the contract form of a listing.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

func ParseEmploymentType(s string) (EmploymentType, error) {
	t := EmploymentType(s)
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return t, nil
	}
	return "", fmt.Errorf("unknown employment type %q", s)
}

// ExperienceLevel is the seniority band of a listing.
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	l := ExperienceLevel(s)
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead:
		return l, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}
