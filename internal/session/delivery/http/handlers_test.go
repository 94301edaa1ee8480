package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/model"
	"kwikr-directory/internal/session"
	pkgLog "kwikr-directory/pkg/log"
)

type mockUseCase struct {
	startOut session.StartOutput
	startErr error
	ended    []string
}

func (m *mockUseCase) Start(ctx context.Context, input session.StartInput) (session.StartOutput, error) {
	return m.startOut, m.startErr
}

func (m *mockUseCase) End(ctx context.Context, sessionID string) error {
	m.ended = append(m.ended, sessionID)
	return nil
}

func (m *mockUseCase) Resolve(ctx context.Context, sessionID string) (model.Scope, error) {
	return model.Scope{}, session.ErrNoSession
}

func newRouter(uc session.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(pkgLog.NewNop(), uc, CookieConfig{Name: "kwikr_session", TTL: time.Hour})
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func TestStart(t *testing.T) {
	uc := &mockUseCase{startOut: session.StartOutput{SessionID: "sess-1", ExpiresAt: time.Date(2024, 8, 19, 10, 0, 0, 0, time.UTC)}}
	router := newRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/session", strings.NewReader(`{"token":"tok"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"session_id":"sess-1"`) {
		t.Errorf("body = %s", w.Body.String())
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "kwikr_session=sess-1") || !strings.Contains(cookie, "HttpOnly") || !strings.Contains(cookie, "Max-Age=3600") {
		t.Errorf("Set-Cookie = %q", cookie)
	}
}

func TestStartErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "missing token", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "blank token", body: `{"token":"   "}`, wantStatus: http.StatusBadRequest},
		{name: "store failure", body: `{"token":"tok"}`, ucErr: errors.New("disk full"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&mockUseCase{startErr: tt.ucErr})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/session", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestEnd(t *testing.T) {
	uc := &mockUseCase{}
	router := newRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "kwikr_session", Value: "sess-1"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(uc.ended) != 1 || uc.ended[0] != "sess-1" {
		t.Errorf("ended = %v", uc.ended)
	}
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("cookie not cleared: %q", cookie)
	}

	// Without a cookie the call is still OK.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/auth/session", nil))
	if w.Code != http.StatusOK || len(uc.ended) != 1 {
		t.Errorf("status = %d ended = %v", w.Code, uc.ended)
	}
}
