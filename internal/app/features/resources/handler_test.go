package resources_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	"github.com/dalemusser/resourcehub/internal/app/features/resources"
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"github.com/dalemusser/resourcehub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	handler := resources.NewHandler(db, errLog, logger)

	hash, err := auth.HashEditorKey("letmein")
	if err != nil {
		t.Fatalf("hashing editor key failed: %v", err)
	}
	mgr := auth.NewSessionManager("", "test-session", "", false, hash, logger)

	r := chi.NewRouter()
	r.Mount("/api/resources", resources.Routes(handler, mgr))
	r.Get("/api/filter-options", handler.FilterOptions)

	return r, testutil.NewFixtures(t, db)
}

func validPayload() string {
	return `{
		"name": "React Docs",
		"fullUrl": "https://react.dev",
		"tags": ["react", "frontend"],
		"type": "Documentation",
		"category": "Frameworks",
		"topic": "Web",
		"manualLastUpdate": "04/2024"
	}`
}

// asEditor marks the request as carrying an editor session.
func asEditor(req *http.Request) *http.Request {
	return auth.WithTestEditor(req)
}

func TestHandleCreate_Valid(t *testing.T) {
	router, _ := newTestRouter(t)

	req := asEditor(httptest.NewRequest("POST", "/api/resources", strings.NewReader(validPayload())))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var body struct {
		Resource    models.Resource   `json:"resource"`
		Diagnostics []json.RawMessage `json:"diagnostics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Resource.ID.IsZero() {
		t.Error("expected an assigned ID")
	}
	if body.Resource.Name != "React Docs" {
		t.Errorf("name: got %q", body.Resource.Name)
	}
	if body.Resource.ManualLastUpdate != "04/2024" {
		t.Errorf("manualLastUpdate: got %q, want %q", body.Resource.ManualLastUpdate, "04/2024")
	}
	if len(body.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics for a clean create, got %d", len(body.Diagnostics))
	}
}

func TestHandleCreate_RequiresEditor(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/resources", strings.NewReader(validPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleCreate_ValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := `{
		"name": "ab",
		"fullUrl": "not-a-url",
		"tags": [],
		"type": "Bogus",
		"category": "x",
		"topic": "y",
		"manualLastUpdate": "13/2024"
	}`
	req := asEditor(httptest.NewRequest("POST", "/api/resources", strings.NewReader(payload)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusUnprocessableEntity, rec.Body.String())
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	want := map[string]string{
		"name":             "Name must be at least 3 characters long.",
		"fullUrl":          "Please enter a valid URL.",
		"tags":             "At least one tag is required.",
		"type":             "Type is invalid.",
		"category":         "Category must be at least 2 characters long.",
		"topic":            "Topic must be at least 2 characters long.",
		"manualLastUpdate": "Format must be MM/YYYY",
	}
	for field, msg := range want {
		if got := body.Errors[field]; got != msg {
			t.Errorf("%s: got %q, want %q", field, got, msg)
		}
	}
}

func TestHandleCreate_BadJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := asEditor(httptest.NewRequest("POST", "/api/resources", strings.NewReader("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleView(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := fx.CreateResource(ctx, "Go Tour", "Languages", "Backend")

	req := httptest.NewRequest("GET", "/api/resources/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Resource models.Resource `json:"resource"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Resource.Name != "Go Tour" {
		t.Errorf("name: got %q, want %q", body.Resource.Name, "Go Tour")
	}
}

func TestHandleView_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/resources/65b2f0000000000000000000",
		"/api/resources/not-an-id",
	} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
}

func TestHandleUpdate(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := fx.CreateResource(ctx, "Old Name", "Frameworks", "Web")

	payload := `{
		"name": "New Name",
		"fullUrl": "https://example.org/resource",
		"tags": ["updated"],
		"type": "Article",
		"category": "Frameworks",
		"topic": "Web"
	}`
	req := asEditor(httptest.NewRequest("PUT", "/api/resources/"+id.Hex(), strings.NewReader(payload)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Resource models.Resource `json:"resource"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Resource.Name != "New Name" {
		t.Errorf("name: got %q, want %q", body.Resource.Name, "New Name")
	}
	if body.Resource.ManualLastUpdate != "" {
		t.Errorf("manualLastUpdate should be cleared on replace, got %q", body.Resource.ManualLastUpdate)
	}
}

func TestHandleUpdate_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := asEditor(httptest.NewRequest("PUT", "/api/resources/65b2f0000000000000000000", strings.NewReader(validPayload())))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleDelete(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := fx.CreateResource(ctx, "Doomed", "Tools", "Infra")

	req := asEditor(httptest.NewRequest("DELETE", "/api/resources/"+id.Hex(), nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first delete: got %d, want %d", rec.Code, http.StatusNoContent)
	}

	// A repeat delete finds nothing.
	req = asEditor(httptest.NewRequest("DELETE", "/api/resources/"+id.Hex(), nil))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleList_FreeTextQuery(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateResource(ctx, "React Router", "Frameworks", "Web")
	fx.CreateResource(ctx, "PostgreSQL Guide", "Databases", "Backend")

	req := httptest.NewRequest("GET", "/api/resources?q=react", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Resources []models.Resource `json:"resources"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body.Resources) != 1 || body.Resources[0].Name != "React Router" {
		t.Errorf("unexpected results: %+v", body.Resources)
	}
}

func TestHandleList_EmptyCatalogIsNotNull(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/resources", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"resources":[]`) {
		t.Errorf("empty catalog must serialize as [], got: %s", rec.Body.String())
	}
}

func TestFilterOptions(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateResource(ctx, "A", "Tools", "Infra")
	fx.CreateResource(ctx, "B", "Frameworks", "Web")
	fx.CreateResource(ctx, "C", "Frameworks", "Web")

	req := httptest.NewRequest("GET", "/api/filter-options", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Types      []string `json:"types"`
		Categories []string `json:"categories"`
		Topics     []string `json:"topics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(body.Types) != 5 || body.Types[0] != "Article" {
		t.Errorf("types: got %v", body.Types)
	}
	if fmt.Sprint(body.Categories) != "[Frameworks Tools]" {
		t.Errorf("categories: got %v, want [Frameworks Tools]", body.Categories)
	}
	if fmt.Sprint(body.Topics) != "[Infra Web]" {
		t.Errorf("topics: got %v, want [Infra Web]", body.Topics)
	}
}
