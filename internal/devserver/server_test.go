package devserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

func newTestServer(t *testing.T) (*echo.Echo, *Store) {
	t.Helper()
	store := NewStore()
	if err := store.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	e := NewRouter(store, Options{JWTSecret: "test-secret", TokenTTL: time.Hour}, zerolog.Nop())
	return e, store
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, rec.Code, rec.Body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return out.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@plantdesk.dev", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@plantdesk.dev", "password": "whatever",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: status = %d, want 401", rec.Code)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	e, _ := newTestServer(t)

	if rec := doJSON(e, http.MethodGet, "/api/auth/profile", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous profile: status = %d, want 401", rec.Code)
	}

	token := loginAs(t, e, "admin@plantdesk.dev", "admin123!")
	rec := doJSON(e, http.MethodGet, "/api/auth/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated profile: status = %d, body %s", rec.Code, rec.Body)
	}
	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.Email != "admin@plantdesk.dev" || !user.IsSuperAdmin {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestLogoutRevokesOnlyThatSession(t *testing.T) {
	e, _ := newTestServer(t)
	first := loginAs(t, e, "admin@plantdesk.dev", "admin123!")
	second := loginAs(t, e, "admin@plantdesk.dev", "admin123!")

	if rec := doJSON(e, http.MethodPost, "/api/auth/logout", first, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: status = %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodGet, "/api/auth/profile", first, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token should 401, got %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodGet, "/api/auth/profile", second, nil); rec.Code != http.StatusOK {
		t.Fatalf("other session should survive, got %d", rec.Code)
	}
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	e, _ := newTestServer(t)
	first := loginAs(t, e, "admin@plantdesk.dev", "admin123!")
	second := loginAs(t, e, "admin@plantdesk.dev", "admin123!")

	if rec := doJSON(e, http.MethodPost, "/api/auth/logout-all", first, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("logout-all: status = %d", rec.Code)
	}
	for _, token := range []string{first, second} {
		if rec := doJSON(e, http.MethodGet, "/api/auth/profile", token, nil); rec.Code != http.StatusUnauthorized {
			t.Fatalf("token should be revoked, got %d", rec.Code)
		}
	}
}

func TestAdminRoutesRequireSuperAdmin(t *testing.T) {
	e, _ := newTestServer(t)
	regular := loginAs(t, e, "north@plantdesk.dev", "north123!")

	if rec := doJSON(e, http.MethodGet, "/api/admin/users", regular, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("regular admin listing users: status = %d, want 403", rec.Code)
	}
	rec := doJSON(e, http.MethodPost, "/api/auth/register", regular, map[string]any{
		"fullName": "X", "teid": "TE9", "email": "x@plantdesk.dev",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("regular admin registering: status = %d, want 403", rec.Code)
	}
}

func TestRegisterAndResetPassword(t *testing.T) {
	e, _ := newTestServer(t)
	super := loginAs(t, e, "admin@plantdesk.dev", "admin123!")

	rec := doJSON(e, http.MethodPost, "/api/auth/register", super, map[string]any{
		"fullName": "Leila Mansouri",
		"teid":     "TE0100",
		"email":    "leila@plantdesk.dev",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body %s", rec.Code, rec.Body)
	}
	var created domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.RequirePasswordChange {
		t.Fatal("generated-password accounts must require a change")
	}

	// Duplicate email conflicts.
	rec = doJSON(e, http.MethodPost, "/api/auth/register", super, map[string]any{
		"fullName": "Dup", "teid": "TE0101", "email": "leila@plantdesk.dev",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: status = %d, want 409", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/admin/reset-password/"+created.ID, super, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: status = %d, body %s", rec.Code, rec.Body)
	}
	var reset struct {
		NewPassword string `json:"newPassword"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reset); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reset.NewPassword == "" {
		t.Fatal("reset must return the generated password")
	}

	// The reset password signs in.
	loginAs(t, e, "leila@plantdesk.dev", reset.NewPassword)
}

func TestChangePasswordValidatesCurrent(t *testing.T) {
	e, _ := newTestServer(t)
	token := loginAs(t, e, "north@plantdesk.dev", "north123!")

	rec := doJSON(e, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "fresh-password-1",
		"confirmPassword": "fresh-password-1",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong current password: status = %d, want 401", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "north123!",
		"newPassword":     "fresh-password-1",
		"confirmPassword": "different",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("mismatched confirmation: status = %d, want 422", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "north123!",
		"newPassword":     "fresh-password-1",
		"confirmPassword": "fresh-password-1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("change: status = %d, body %s", rec.Code, rec.Body)
	}

	loginAs(t, e, "north@plantdesk.dev", "fresh-password-1")
}

func TestSubmissionListScopedByPlant(t *testing.T) {
	e, store := newTestServer(t)

	super := loginAs(t, e, "admin@plantdesk.dev", "admin123!")
	rec := doJSON(e, http.MethodGet, "/api/submissions", super, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("super list: status = %d", rec.Code)
	}
	var all []domain.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != len(store.Submissions()) {
		t.Fatalf("super admin should see all %d submissions, got %d", len(store.Submissions()), len(all))
	}

	regular := loginAs(t, e, "north@plantdesk.dev", "north123!")
	rec = doJSON(e, http.MethodGet, "/api/submissions", regular, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("regular list: status = %d", rec.Code)
	}
	var scoped []domain.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &scoped); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(scoped) == 0 || len(scoped) >= len(all) {
		t.Fatalf("regular admin should see a strict plant subset, got %d of %d", len(scoped), len(all))
	}
	for _, sub := range scoped {
		if sub.PlantName != "North Plant" {
			t.Fatalf("submission %s leaked from plant %s", sub.ID, sub.PlantName)
		}
	}
}

func TestCreateSubmissionMultipart(t *testing.T) {
	e, store := newTestServer(t)
	plants := store.Plants()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("fullName", "Hajar Alaoui")
	_ = w.WriteField("teId", "TE2001")
	_ = w.WriteField("cin", "Q775310")
	_ = w.WriteField("dateOfBirth", "1995-11-02")
	_ = w.WriteField("plantId", plants[0].ID)
	part, _ := w.CreateFormFile("cinImage", "cin.jpg")
	_, _ = part.Write([]byte("jpeg-bytes"))
	part, _ = w.CreateFormFile("picImage", "pic.jpg")
	_, _ = part.Write([]byte("jpeg-bytes"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body)
	}
	var sub domain.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.ID == "" || sub.CINImage != "cin.jpg" || sub.PlantName != plants[0].Name {
		t.Fatalf("unexpected submission: %+v", sub)
	}
}

func TestCreateSubmissionReportsMissingFields(t *testing.T) {
	e, _ := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("fullName", "Only A Name")
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var out struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Errors) != 4 { // teId, cin, dateOfBirth, plantId
		t.Fatalf("expected 4 field errors, got %v", out.Errors)
	}
}

func TestExportWritesCSVWithDisposition(t *testing.T) {
	e, _ := newTestServer(t)
	token := loginAs(t, e, "admin@plantdesk.dev", "admin123!")

	rec := doJSON(e, http.MethodPost, "/api/export", token, map[string]any{"format": 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("export: status = %d, body %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="submissions.csv"`) {
		t.Fatalf("disposition = %q", got)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "full_name,te_id,cin") {
		t.Fatalf("csv header missing: %q", body)
	}
	if !strings.Contains(body, "Amina Berrada") {
		t.Fatal("seeded submission missing from export")
	}

	rec = doJSON(e, http.MethodPost, "/api/export", token, map[string]any{"format": 1})
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="submissions.xlsx"`) {
		t.Fatalf("xlsx disposition = %q", got)
	}
}

func TestPlantEndpointsArePublic(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/plants", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("plants: status = %d", rec.Code)
	}
	var plants []domain.Plant
	if err := json.Unmarshal(rec.Body.Bytes(), &plants); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plants) != 2 {
		t.Fatalf("expected the 2 seeded plants, got %d", len(plants))
	}

	if rec := doJSON(e, http.MethodGet, "/api/plants/does-not-exist", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("missing plant: status = %d, want 404", rec.Code)
	}
}
