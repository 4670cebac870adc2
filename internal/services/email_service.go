package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/devjobs/backend/internal/config"
)

// EmailService sends transactional mail through an EmailJS-compatible HTTP
// endpoint. Every send is fire-and-forget: the caller's operation has
// already committed, and a mail failure is only logged.
type EmailService struct {
	cfg    config.MailConfig
	client *http.Client
}

func NewEmailService(cfg config.MailConfig) *EmailService {
	return &EmailService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether outbound mail is configured. When it is not,
// every Send* method is a silent no-op.
func (s *EmailService) Enabled() bool {
	return s.cfg.ServiceID != "" && s.cfg.TemplateID != "" && s.cfg.UserID != ""
}

// SendApplicationConfirmation notifies a candidate that their application
// was received.
func (s *EmailService) SendApplicationConfirmation(toEmail, toName, jobTitle, company string) {
	s.dispatch(map[string]string{
		"to_email":     toEmail,
		"to_name":      toName,
		"subject":      fmt.Sprintf("Application Received: %s at %s", jobTitle, company),
		"message":      fmt.Sprintf("Hi %s,\n\nYour application for %s at %s has been received. The company will contact you if your profile matches.", toName, jobTitle, company),
		"job_title":    jobTitle,
		"company_name": company,
	})
}

// SendAlertConfirmation confirms a new job alert subscription.
func (s *EmailService) SendAlertConfirmation(toEmail string, keywords []string) {
	s.dispatch(map[string]string{
		"to_email": toEmail,
		"to_name":  "Job Seeker",
		"subject":  "Job alert created",
		"message":  fmt.Sprintf("You will receive alerts for new jobs matching: %s", strings.Join(keywords, ", ")),
	})
}

// dispatch runs the actual send in the background with its own deadline so
// a slow mail provider never blocks a request.
func (s *EmailService) dispatch(params map[string]string) {
	if !s.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.send(ctx, params); err != nil {
			log.Printf("email: send to %s failed: %v", params["to_email"], err)
		}
	}()
}

func (s *EmailService) send(ctx context.Context, params map[string]string) error {
	payload := map[string]interface{}{
		"service_id":      s.cfg.ServiceID,
		"template_id":     s.cfg.TemplateID,
		"user_id":         s.cfg.UserID,
		"template_params": params,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}
	return nil
}
