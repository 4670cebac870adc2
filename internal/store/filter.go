package store

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/devjobs/backend/internal/models"
)

// JobFilter is a bag of optional, independent predicates combined with AND
// semantics. The zero value matches every approved listing.
type JobFilter struct {
	// Search matches title, company or description, case-insensitive substring.
	Search string
	// Location is a case-insensitive substring match on the location field.
	Location string
	// RemoteOnly keeps only listings with the remote flag set.
	RemoteOnly bool
	// Technology must be present in the listing's technology tags.
	Technology string
	// MinSalary keeps listings whose salary_min is set and >= the value.
	MinSalary *int
	// MaxSalary keeps listings whose salary_max is set and <= the value.
	MaxSalary *int
	// EmploymentType and ExperienceLevel are exact matches. Unknown values
	// simply match nothing.
	EmploymentType  string
	ExperienceLevel string
}

// FilterFromQuery builds a JobFilter from URL query parameters.
//
// The literal location value "remote" is dropped here: remote work is
// expressed through the remote flag, not the location text. Malformed
// numeric parameters fail with an error rather than being silently
// ignored, so the caller can reject the request with a validation error.
func FilterFromQuery(q url.Values) (JobFilter, error) {
	f := JobFilter{
		Search:          q.Get("search"),
		Location:        q.Get("location"),
		Technology:      q.Get("technology"),
		EmploymentType:  q.Get("employmentType"),
		ExperienceLevel: q.Get("experienceLevel"),
	}

	if strings.EqualFold(f.Location, "remote") {
		f.Location = ""
	}
	if q.Get("remote") == "true" {
		f.RemoteOnly = true
	}

	var err error
	if f.MinSalary, err = parseSalary(q.Get("minSalary"), "minSalary"); err != nil {
		return JobFilter{}, err
	}
	if f.MaxSalary, err = parseSalary(q.Get("maxSalary"), "maxSalary"); err != nil {
		return JobFilter{}, err
	}

	return f, nil
}

func parseSalary(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return &n, nil
}

// Matches reports whether an approved listing satisfies every supplied
// predicate. Listings that are not approved never match. The predicates are
// independent boolean filters, so evaluation order is irrelevant.
func (f JobFilter) Matches(job models.Job) bool {
	if !job.Status.Visible() {
		return false
	}

	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(job.Title), s) &&
			!strings.Contains(strings.ToLower(job.Company), s) &&
			!strings.Contains(strings.ToLower(job.Description), s) {
			return false
		}
	}

	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}

	if f.RemoteOnly && !job.Remote {
		return false
	}

	if f.Technology != "" {
		found := false
		for _, t := range job.Technologies {
			if t == f.Technology {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MinSalary != nil && (job.SalaryMin == nil || *job.SalaryMin < *f.MinSalary) {
		return false
	}
	if f.MaxSalary != nil && (job.SalaryMax == nil || *job.SalaryMax > *f.MaxSalary) {
		return false
	}

	if f.EmploymentType != "" && string(job.EmploymentType) != f.EmploymentType {
		return false
	}
	if f.ExperienceLevel != "" && string(job.ExperienceLevel) != f.ExperienceLevel {
		return false
	}

	return true
}
