package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devjobs/backend/internal/models"
)

// GormStore is the PostgreSQL backend. One type serves every store
// interface; the service layer depends on the narrow interfaces only.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ─── JobStore ───────────────────────────────────────────────────────────────

func (s *GormStore) List(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	q := s.db.WithContext(ctx).Where("status = ?", models.JobStatusApproved)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.RemoteOnly {
		q = q.Where("remote = ?", true)
	}
	if filter.Technology != "" {
		q = q.Where("? = ANY(technologies)", filter.Technology)
	}
	if filter.MinSalary != nil {
		q = q.Where("salary_min IS NOT NULL AND salary_min >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		q = q.Where("salary_max IS NOT NULL AND salary_max <= ?", *filter.MaxSalary)
	}
	if filter.EmploymentType != "" {
		q = q.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.ExperienceLevel != "" {
		q = q.Where("experience_level = ?", filter.ExperienceLevel)
	}

	jobs := make([]models.Job, 0)
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *GormStore) ListByOwner(ctx context.Context, userID string) ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	err := s.db.WithContext(ctx).
		Where("posted_by = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) Create(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(job).Error
}

func (s *GormStore) Update(ctx context.Context, job *models.Job) error {
	// Save writes the full mutable field set in one statement, so readers
	// never observe a half-updated listing.
	res := s.db.WithContext(ctx).Save(job)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ─── ApplicationStore ───────────────────────────────────────────────────────

func (s *GormStore) CreateApplication(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Omit("Job").Create(app).Error
}

func (s *GormStore) ApplicationExists(ctx context.Context, jobID, applicantEmail string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ? AND applicant_email = ?", jobID, applicantEmail).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) ListApplications(ctx context.Context, jobID, applicantEmail string) ([]models.Application, error) {
	q := s.db.WithContext(ctx).Preload("Job")
	if jobID != "" {
		q = q.Where("job_id = ?", jobID)
	}
	if applicantEmail != "" {
		q = q.Where("applicant_email = ?", applicantEmail)
	}

	apps := make([]models.Application, 0)
	if err := q.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ─── FavoriteStore ──────────────────────────────────────────────────────────

func (s *GormStore) CreateFavorite(ctx context.Context, fav *models.Favorite) error {
	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Omit("Job").Create(fav).Error
}

func (s *GormStore) FavoriteExists(ctx context.Context, jobID, userEmail string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("job_id = ? AND user_email = ?", jobID, userEmail).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) DeleteFavorite(ctx context.Context, jobID, userEmail string) error {
	// Zero rows affected is fine: removal is idempotent.
	return s.db.WithContext(ctx).
		Where("job_id = ? AND user_email = ?", jobID, userEmail).
		Delete(&models.Favorite{}).Error
}

func (s *GormStore) ListFavorites(ctx context.Context, userEmail string) ([]models.Favorite, error) {
	favs := make([]models.Favorite, 0)
	err := s.db.WithContext(ctx).Preload("Job").
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

// ─── AlertStore ─────────────────────────────────────────────────────────────

func (s *GormStore) GetAlertByEmail(ctx context.Context, email string) (*models.EmailAlert, error) {
	var alert models.EmailAlert
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (s *GormStore) CreateAlert(ctx context.Context, alert *models.EmailAlert) error {
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(alert).Error
}

func (s *GormStore) UpdateAlert(ctx context.Context, alert *models.EmailAlert) error {
	return s.db.WithContext(ctx).Save(alert).Error
}

// ─── UserStore ──────────────────────────────────────────────────────────────

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(user).Error
}
