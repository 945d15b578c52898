package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/api/middleware"
	"github.com/alnoor-academy/institute-api/internal/core/service"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/memstore"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/session"
)

// newTestRouter wires the router against in-memory backends with the
// configured admin account already bootstrapped.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	storage := memstore.New()
	sessions := session.NewMemoryStore()

	auth := service.NewAuthService(storage, sessions, time.Hour, zerolog.Nop())
	if err := auth.BootstrapAdmin(context.Background(), "admin", "hunter2"); err != nil {
		t.Fatalf("bootstrap admin: %v", err)
	}

	return NewRouter(storage, sessions, RouterConfig{
		SessionTTL: time.Hour,
		Logger:     zerolog.Nop(),
		Metrics:    prometheus.NewRegistry(),
	})
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func login(t *testing.T, e *echo.Echo, username, password string) *http.Cookie {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"`+username+`","password":"`+password+`"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, rec.Code, rec.Body.String())
	}
	return sessionCookie(t, rec)
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Message
}

func TestRouter_RegisterAndDuplicate(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/api/register", `{"username":"amal","password":"secret1"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret1") || strings.Contains(rec.Body.String(), `"password"`) {
		t.Fatalf("register response leaks the password: %s", rec.Body.String())
	}
	// Registration logs the account in immediately.
	cookie := sessionCookie(t, rec)
	if rec := doJSON(e, http.MethodGet, "/api/user", "", cookie); rec.Code != http.StatusOK {
		t.Fatalf("session from register rejected: %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/register", `{"username":"amal","password":"other22"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status %d", rec.Code)
	}
	if got := message(t, rec); got != "Username already exists" {
		t.Fatalf("duplicate register message: %q", got)
	}
}

func TestRouter_LoginFailureIsGeneric(t *testing.T) {
	e := newTestRouter(t)

	unknown := doJSON(e, http.MethodPost, "/api/login", `{"username":"ghost","password":"pw"}`, nil)
	wrong := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`, nil)

	if unknown.Code != http.StatusUnauthorized || wrong.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrong.Code)
	}
	if message(t, unknown) != message(t, wrong) {
		t.Fatalf("login failures distinguishable: %q vs %q", message(t, unknown), message(t, wrong))
	}
}

func TestRouter_UserEndpoint(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/api/user", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous /api/user: status %d", rec.Code)
	}
	if got := message(t, rec); got != "Authentication required" {
		t.Fatalf("unexpected message: %q", got)
	}

	cookie := login(t, e, "admin", "hunter2")
	rec = doJSON(e, http.MethodGet, "/api/user", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated /api/user: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"username":"admin"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_AdminGateMatrix(t *testing.T) {
	e := newTestRouter(t)

	if rec := doJSON(e, http.MethodGet, "/api/admin/stats", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous admin read: status %d", rec.Code)
	}

	if rec := doJSON(e, http.MethodPost, "/api/register", `{"username":"user","password":"secret1"}`, nil); rec.Code != http.StatusCreated {
		t.Fatalf("register: %d", rec.Code)
	}
	userCookie := login(t, e, "user", "secret1")
	rec := doJSON(e, http.MethodGet, "/api/admin/stats", "", userCookie)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin admin read: status %d", rec.Code)
	}
	if got := message(t, rec); got != "Admin access required" {
		t.Fatalf("unexpected message: %q", got)
	}

	adminCookie := login(t, e, "admin", "hunter2")
	if rec := doJSON(e, http.MethodGet, "/api/admin/stats", "", adminCookie); rec.Code != http.StatusOK {
		t.Fatalf("admin stats: status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ApplicationLifecycle(t *testing.T) {
	e := newTestRouter(t)
	adminCookie := login(t, e, "admin", "hunter2")

	rec := doJSON(e, http.MethodPost, "/api/apply", `{"name":"Student","email":"s@example.com","courseId":"c1"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("apply: status %d body %s", rec.Code, rec.Body.String())
	}
	var app struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &app); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if app.Status != "pending" {
		t.Fatalf("new application status %q", app.Status)
	}

	// Bogus status: 400 enumerating the legal values, before any lookup.
	rec = doJSON(e, http.MethodPatch, "/api/admin/applications/"+app.ID, `{"status":"approved"}`, adminCookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bogus status: %d", rec.Code)
	}
	if got := message(t, rec); !strings.Contains(got, "pending, reviewed, accepted, rejected") {
		t.Fatalf("error does not enumerate statuses: %q", got)
	}

	rec = doJSON(e, http.MethodPatch, "/api/admin/applications/"+app.ID, `{"status":"accepted"}`, adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("accept: status %d body %s", rec.Code, rec.Body.String())
	}
	// Backward move is legal.
	rec = doJSON(e, http.MethodPatch, "/api/admin/applications/"+app.ID, `{"status":"pending"}`, adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("backward transition: status %d", rec.Code)
	}

	if rec := doJSON(e, http.MethodDelete, "/api/admin/applications/"+app.ID, "", adminCookie); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodDelete, "/api/admin/applications/"+app.ID, "", adminCookie); rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete: status %d", rec.Code)
	}
}

func TestRouter_MessageReadIsIdempotent(t *testing.T) {
	e := newTestRouter(t)
	adminCookie := login(t, e, "admin", "hunter2")

	rec := doJSON(e, http.MethodPost, "/api/contact", `{"name":"V","email":"v@example.com","message":"salaam"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("contact: status %d body %s", rec.Code, rec.Body.String())
	}
	var msg struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode message: %v", err)
	}

	for i := 0; i < 2; i++ {
		rec = doJSON(e, http.MethodPatch, "/api/admin/messages/"+msg.ID+"/read", "", adminCookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("mark read #%d: status %d", i+1, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"isRead":true`) {
			t.Fatalf("mark read #%d body: %s", i+1, rec.Body.String())
		}
	}
}

func TestRouter_ApplicationListFilters(t *testing.T) {
	e := newTestRouter(t)
	adminCookie := login(t, e, "admin", "hunter2")

	for _, body := range []string{
		`{"name":"A","email":"a@example.com","courseId":"c1"}`,
		`{"name":"B","email":"b@example.com","courseId":"c2"}`,
	} {
		if rec := doJSON(e, http.MethodPost, "/api/apply", body, nil); rec.Code != http.StatusCreated {
			t.Fatalf("apply: status %d body %s", rec.Code, rec.Body.String())
		}
	}

	listLen := func(path string) int {
		t.Helper()
		rec := doJSON(e, http.MethodGet, path, "", adminCookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status %d body %s", path, rec.Code, rec.Body.String())
		}
		var apps []json.RawMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &apps); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		return len(apps)
	}

	// "all" and the empty string are unconstrained for both parameters.
	if n := listLen("/api/admin/applications"); n != 2 {
		t.Fatalf("unfiltered list: %d applications", n)
	}
	if n := listLen("/api/admin/applications?courseId=all&status=all"); n != 2 {
		t.Fatalf("all/all list: %d applications", n)
	}
	if n := listLen("/api/admin/applications?courseId=c1"); n != 1 {
		t.Fatalf("courseId=c1 list: %d applications", n)
	}
	if n := listLen("/api/admin/applications?status=reviewed"); n != 0 {
		t.Fatalf("status=reviewed list: %d applications", n)
	}
}

func TestRouter_PublicVisibility(t *testing.T) {
	e := newTestRouter(t)
	adminCookie := login(t, e, "admin", "hunter2")

	rec := doJSON(e, http.MethodPost, "/api/courses", `{"title":"Tajweed","description":"Recitation","active":false}`, adminCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create course: status %d body %s", rec.Code, rec.Body.String())
	}
	var course struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &course); err != nil {
		t.Fatalf("decode course: %v", err)
	}

	if rec := doJSON(e, http.MethodGet, "/api/courses", "", nil); strings.Contains(rec.Body.String(), "Tajweed") {
		t.Fatalf("inactive course publicly listed")
	}
	if rec := doJSON(e, http.MethodGet, "/api/courses/"+course.ID, "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("inactive course fetch: status %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodGet, "/api/admin/courses", "", adminCookie); !strings.Contains(rec.Body.String(), "Tajweed") {
		t.Fatalf("admin list missing inactive course")
	}

	// Anonymous mutation attempts never pass the gate.
	if rec := doJSON(e, http.MethodPost, "/api/courses", `{"title":"X","description":"Y"}`, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create: status %d", rec.Code)
	}
}

func TestRouter_Logout(t *testing.T) {
	e := newTestRouter(t)
	cookie := login(t, e, "admin", "hunter2")

	rec := doJSON(e, http.MethodPost, "/api/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: status %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.MaxAge >= 0 {
			t.Fatalf("logout did not expire the cookie")
		}
	}

	if rec := doJSON(e, http.MethodGet, "/api/user", "", cookie); rec.Code != http.StatusUnauthorized {
		t.Fatalf("session survives logout: status %d", rec.Code)
	}
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter(t)

	if rec := doJSON(e, http.MethodGet, "/health", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("liveness: status %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodGet, "/health/ready", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("readiness: status %d body %s", rec.Code, rec.Body.String())
	}
}
