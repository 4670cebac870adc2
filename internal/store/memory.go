package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/devjobs/backend/internal/models"
)

// MemoryStore is the process-local backend. It is seeded with a few approved
// listings so the board works out of the box without a database, and it also
// serves as the fallback target when PostgreSQL calls fail.
//
// A single mutex guards every slice; the demo data set is small enough that
// finer-grained locking would buy nothing.
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         []models.Job
	applications []models.Application
	favorites    []models.Favorite
	alerts       []models.EmailAlert
	users        []models.User
}

// NewMemoryStore returns a store pre-seeded with demo listings.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: seedJobs()}
}

func seedJobs() []models.Job {
	now := time.Now()
	salary := func(n int) *int { return &n }

	return []models.Job{
		{
			ID:              uuid.NewString(),
			CreatedAt:       now.Add(-72 * time.Hour),
			UpdatedAt:       now.Add(-72 * time.Hour),
			Title:           "Senior Full Stack Developer",
			Company:         "TechCorp Solutions",
			Description:     "Build and maintain scalable web applications alongside a collaborative product team. You will own features end to end, from API design to frontend delivery, and take part in code reviews and architecture discussions.",
			Requirements:    "5+ years of full-stack experience. Strong JavaScript/TypeScript and React. Node.js, PostgreSQL and at least one cloud platform. Experience with CI/CD pipelines is a plus.",
			SalaryMin:       salary(90000),
			SalaryMax:       salary(130000),
			Location:        "San Francisco, CA",
			Remote:          true,
			Technologies:    pq.StringArray{"JavaScript", "TypeScript", "React", "Node.js", "PostgreSQL"},
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.ExperienceSenior,
			Status:          models.JobStatusApproved,
		},
		{
			ID:              uuid.NewString(),
			CreatedAt:       now.Add(-48 * time.Hour),
			UpdatedAt:       now.Add(-48 * time.Hour),
			Title:           "Frontend React Developer",
			Company:         "StartupXYZ",
			Description:     "Work directly with our design team to ship polished, responsive interfaces for our productivity tools. You will contribute to the component library and help shape the design system.",
			Requirements:    "3+ years with React and modern JavaScript. Solid HTML/CSS and responsive design. Familiarity with state management libraries and testing tools.",
			SalaryMin:       salary(70000),
			SalaryMax:       salary(95000),
			Location:        "Austin, TX",
			Remote:          false,
			Technologies:    pq.StringArray{"React", "JavaScript", "TypeScript", "CSS3", "Redux"},
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.ExperienceMid,
			Status:          models.JobStatusApproved,
		},
		{
			ID:              uuid.NewString(),
			CreatedAt:       now.Add(-24 * time.Hour),
			UpdatedAt:       now.Add(-24 * time.Hour),
			Title:           "Junior Python Developer",
			Company:         "DataFlow Analytics",
			Description:     "Join our data analytics team and grow into backend development with Python. Comprehensive mentorship program, learning budget and flexible hours.",
			Requirements:    "Basic Python and SQL knowledge. Understanding of OOP concepts. Degree in CS or equivalent practical experience. Django or Flask exposure is a plus.",
			SalaryMin:       salary(55000),
			SalaryMax:       salary(70000),
			Location:        "Seattle, WA",
			Remote:          true,
			Technologies:    pq.StringArray{"Python", "Django", "PostgreSQL", "SQL", "Git"},
			EmploymentType:  models.EmploymentFullTime,
			ExperienceLevel: models.ExperienceEntry,
			Status:          models.JobStatusApproved,
		},
	}
}

// newestFirst sorts by creation time descending; the stable sort keeps
// insertion order for equal timestamps.
func newestFirstJobs(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
}

// ─── JobStore ───────────────────────────────────────────────────────────────

func (m *MemoryStore) List(_ context.Context, filter JobFilter) ([]models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Job, 0)
	for _, j := range m.jobs {
		if filter.Matches(j) {
			out = append(out, j)
		}
	}
	newestFirstJobs(out)
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, j := range m.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListByOwner(_ context.Context, userID string) ([]models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Job, 0)
	for _, j := range m.jobs {
		if j.PostedBy != nil && *j.PostedBy == userID {
			out = append(out, j)
		}
	}
	newestFirstJobs(out)
	return out, nil
}

func (m *MemoryStore) Create(_ context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	m.jobs = append(m.jobs, *job)
	return nil
}

func (m *MemoryStore) Update(_ context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.jobs {
		if m.jobs[i].ID == job.ID {
			job.CreatedAt = m.jobs[i].CreatedAt
			job.UpdatedAt = time.Now()
			m.jobs[i] = *job
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ─── ApplicationStore ───────────────────────────────────────────────────────

func (m *MemoryStore) CreateApplication(_ context.Context, app *models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.CreatedAt = time.Now()
	m.applications = append(m.applications, *app)
	return nil
}

func (m *MemoryStore) ApplicationExists(_ context.Context, jobID, applicantEmail string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.applications {
		if a.JobID == jobID && a.ApplicantEmail == applicantEmail {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) ListApplications(_ context.Context, jobID, applicantEmail string) ([]models.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Application, 0)
	for _, a := range m.applications {
		if jobID != "" && a.JobID != jobID {
			continue
		}
		if applicantEmail != "" && a.ApplicantEmail != applicantEmail {
			continue
		}
		a.Job = m.jobByID(a.JobID)
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// jobByID fills the join side of application/favorite listings. Caller must
// hold at least a read lock.
func (m *MemoryStore) jobByID(id string) models.Job {
	for _, j := range m.jobs {
		if j.ID == id {
			return j
		}
	}
	return models.Job{}
}

// ─── FavoriteStore ──────────────────────────────────────────────────────────

func (m *MemoryStore) CreateFavorite(_ context.Context, fav *models.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}
	fav.CreatedAt = time.Now()
	m.favorites = append(m.favorites, *fav)
	return nil
}

func (m *MemoryStore) FavoriteExists(_ context.Context, jobID, userEmail string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, f := range m.favorites {
		if f.JobID == jobID && f.UserEmail == userEmail {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) DeleteFavorite(_ context.Context, jobID, userEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.favorites {
		if m.favorites[i].JobID == jobID && m.favorites[i].UserEmail == userEmail {
			m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
			return nil
		}
	}
	// Removing an absent favorite is a no-op.
	return nil
}

func (m *MemoryStore) ListFavorites(_ context.Context, userEmail string) ([]models.Favorite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Favorite, 0)
	for _, f := range m.favorites {
		if f.UserEmail == userEmail {
			f.Job = m.jobByID(f.JobID)
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ─── AlertStore ─────────────────────────────────────────────────────────────

func (m *MemoryStore) GetAlertByEmail(_ context.Context, email string) (*models.EmailAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.alerts {
		if a.Email == email {
			alert := a
			return &alert, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateAlert(_ context.Context, alert *models.EmailAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	now := time.Now()
	alert.CreatedAt = now
	alert.UpdatedAt = now
	m.alerts = append(m.alerts, *alert)
	return nil
}

func (m *MemoryStore) UpdateAlert(_ context.Context, alert *models.EmailAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.alerts {
		if m.alerts[i].ID == alert.ID {
			alert.UpdatedAt = time.Now()
			m.alerts[i] = *alert
			return nil
		}
	}
	return ErrNotFound
}

// ─── UserStore ──────────────────────────────────────────────────────────────

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	m.users = append(m.users, *user)
	return nil
}
