package models_test

import (
	"testing"

	"github.com/devjobs/backend/internal/models"
)

func TestParseJobStatus_ValidValues(t *testing.T) {
	valid := []string{"pending", "approved", "rejected"}
	for _, s := range valid {
		got, err := models.ParseJobStatus(s)
		if err != nil {
			t.Errorf("ParseJobStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseJobStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseJobStatus_InvalidValues(t *testing.T) {
	for _, s := range []string{"", "APPROVED", "live", "draft"} {
		if _, err := models.ParseJobStatus(s); err == nil {
			t.Errorf("ParseJobStatus(%q) expected error, got nil", s)
		}
	}
}

func TestJobStatus_Visible(t *testing.T) {
	if !models.JobStatusApproved.Visible() {
		t.Error("approved listings should be visible")
	}
	for _, s := range []models.JobStatus{models.JobStatusPending, models.JobStatusRejected} {
		if s.Visible() {
			t.Errorf("%s listings should not be visible", s)
		}
	}
}

func TestParseApplicationStatus(t *testing.T) {
	valid := []string{"pending", "reviewed", "accepted", "rejected"}
	for _, s := range valid {
		if _, err := models.ParseApplicationStatus(s); err != nil {
			t.Errorf("ParseApplicationStatus(%q) returned unexpected error: %v", s, err)
		}
	}
	if _, err := models.ParseApplicationStatus("withdrawn"); err == nil {
		t.Error("ParseApplicationStatus(\"withdrawn\") expected error, got nil")
	}
}

func TestParseEmploymentType(t *testing.T) {
	valid := []string{"full-time", "part-time", "contract", "internship"}
	for _, s := range valid {
		if _, err := models.ParseEmploymentType(s); err != nil {
			t.Errorf("ParseEmploymentType(%q) returned unexpected error: %v", s, err)
		}
	}
	if _, err := models.ParseEmploymentType("freelance"); err == nil {
		t.Error("ParseEmploymentType(\"freelance\") expected error, got nil")
	}
}

func TestParseExperienceLevel(t *testing.T) {
	valid := []string{"entry", "mid", "senior", "lead"}
	for _, s := range valid {
		if _, err := models.ParseExperienceLevel(s); err != nil {
			t.Errorf("ParseExperienceLevel(%q) returned unexpected error: %v", s, err)
		}
	}
	if _, err := models.ParseExperienceLevel("principal"); err == nil {
		t.Error("ParseExperienceLevel(\"principal\") expected error, got nil")
	}
}
