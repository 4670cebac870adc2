package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devjobs/backend/internal/auth"
	"github.com/devjobs/backend/internal/handlers"
	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/services"
	"github.com/devjobs/backend/internal/store"
)

func newTestRouter() (*gin.Engine, *auth.Tokens) {
	gin.SetMode(gin.TestMode)

	mem := store.NewMemoryStore()
	tokens := auth.New("test-secret")
	jobs := handlers.NewJobHandler(services.NewJobService(mem), tokens)

	r := gin.New()
	r.GET("/jobs", jobs.Search)
	r.POST("/jobs", jobs.Create)
	r.GET("/jobs/mine", jobs.Mine)
	r.GET("/jobs/:id", jobs.GetByID)
	r.PUT("/jobs/:id", jobs.Update)
	r.DELETE("/jobs/:id", jobs.Delete)
	return r, tokens
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	body := map[string]json.RawMessage{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestSearchEndpoint_Envelope(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?remote=true", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	var jobs []models.Job
	if err := json.Unmarshal(body["jobs"], &jobs); err != nil {
		t.Fatalf("jobs envelope: %v", err)
	}
	for _, j := range jobs {
		if !j.Remote {
			t.Errorf("remote filter leaked on-site listing %q", j.Title)
		}
	}
}

func TestSearchEndpoint_MalformedSalaryIs400(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?minSalary=lots", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400\n%s", w.Code, w.Body.String())
	}
}

func TestMineEndpoint_RequiresAuth(t *testing.T) {
	r, tokens := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/mine", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/mine", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", w.Code)
	}

	raw, err := tokens.Generate(&models.User{ID: "user-1", Email: "hr@acme.com", Role: "company"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/jobs/mine", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200\n%s", w.Code, w.Body.String())
	}
}

func TestCreateEndpoint_AnonymousThenHidden(t *testing.T) {
	r, _ := newTestRouter()

	payload := `{"title":"Backend Engineer","company":"Acme","description":"Build APIs","location":"Remote","remote":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\n%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	var job models.Job
	if err := json.Unmarshal(body["job"], &job); err != nil {
		t.Fatalf("job envelope: %v", err)
	}
	if job.Status != models.JobStatusPending {
		t.Errorf("anonymous listing status = %s, want pending", job.Status)
	}

	// The pending listing is invisible on the public detail route.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/"+job.ID, nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET pending listing: status = %d, want 404", w.Code)
	}
}

func TestCreateEndpoint_OwnedGoesLive(t *testing.T) {
	r, tokens := newTestRouter()

	raw, err := tokens.Generate(&models.User{ID: "user-1", Email: "hr@acme.com", Role: "company"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	payload := `{"title":"Backend Engineer","company":"Acme","description":"Build APIs","location":"Berlin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+raw)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\n%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	var job models.Job
	if err := json.Unmarshal(body["job"], &job); err != nil {
		t.Fatalf("job envelope: %v", err)
	}
	if job.Status != models.JobStatusApproved {
		t.Errorf("owned listing status = %s, want approved", job.Status)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/"+job.ID, nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET approved listing: status = %d, want 200", w.Code)
	}
}

func TestDeleteEndpoint_NonOwnerIs403(t *testing.T) {
	r, tokens := newTestRouter()

	owner, _ := tokens.Generate(&models.User{ID: "user-1"})
	intruder, _ := tokens.Generate(&models.User{ID: "user-2"})

	payload := `{"title":"Backend Engineer","company":"Acme","description":"Build APIs","location":"Berlin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+owner)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d\n%s", w.Code, w.Body.String())
	}
	var job models.Job
	if err := json.Unmarshal(decodeBody(t, w)["job"], &job); err != nil {
		t.Fatalf("job envelope: %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/jobs/"+job.ID, nil)
	req.Header.Set("Authorization", "Bearer "+intruder)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("delete by non-owner: status = %d, want 403", w.Code)
	}

	// Missing listings answer the same way, so ids cannot be probed.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/jobs/no-such-id", nil)
	req.Header.Set("Authorization", "Bearer "+intruder)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("delete of missing listing: status = %d, want 403", w.Code)
	}
}
