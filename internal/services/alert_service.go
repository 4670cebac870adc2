package services

import (
	"context"

	"github.com/lib/pq"

	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/store"
)

// AlertService manages saved-search subscriptions, at most one per email.
type AlertService struct {
	alerts store.AlertStore
	mailer *EmailService
}

func NewAlertService(alerts store.AlertStore, mailer *EmailService) *AlertService {
	return &AlertService{alerts: alerts, mailer: mailer}
}

// Subscribe upserts the alert for req.Email. An existing record — active or
// not — has its filter fields overwritten and is forced back to active.
// The second return value reports whether a new record was created.
func (s *AlertService) Subscribe(ctx context.Context, req *dtos.AlertRequest) (*models.EmailAlert, bool, error) {
	alert, err := s.alerts.GetAlertByEmail(ctx, req.Email)
	if err != nil {
		return nil, false, err
	}

	if alert != nil {
		alert.Keywords = pq.StringArray(req.Keywords)
		alert.Location = req.Location
		alert.MinSalary = req.MinSalary
		alert.MaxSalary = req.MaxSalary
		alert.RemoteOnly = req.RemoteOnly
		alert.Active = true
		if err := s.alerts.UpdateAlert(ctx, alert); err != nil {
			return nil, false, err
		}
		return alert, false, nil
	}

	alert = &models.EmailAlert{
		Email:      req.Email,
		Keywords:   pq.StringArray(req.Keywords),
		Location:   req.Location,
		MinSalary:  req.MinSalary,
		MaxSalary:  req.MaxSalary,
		RemoteOnly: req.RemoteOnly,
		Active:     true,
	}
	if err := s.alerts.CreateAlert(ctx, alert); err != nil {
		return nil, false, err
	}

	s.mailer.SendAlertConfirmation(req.Email, req.Keywords)

	return alert, true, nil
}

// Get returns the active alert for the email, or nil when there is none.
// A nil alert is a normal answer, not an error.
func (s *AlertService) Get(ctx context.Context, email string) (*models.EmailAlert, error) {
	alert, err := s.alerts.GetAlertByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if alert == nil || !alert.Active {
		return nil, nil
	}
	return alert, nil
}

// Unsubscribe deactivates the alert, keeping the row. Unsubscribing an
// unknown email is a no-op.
func (s *AlertService) Unsubscribe(ctx context.Context, email string) error {
	alert, err := s.alerts.GetAlertByEmail(ctx, email)
	if err != nil {
		return err
	}
	if alert == nil {
		return nil
	}
	alert.Active = false
	return s.alerts.UpdateAlert(ctx, alert)
}
