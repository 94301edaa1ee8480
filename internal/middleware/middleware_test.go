package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/model"
	"kwikr-directory/internal/session"
	pkgLog "kwikr-directory/pkg/log"
)

type mockSessions struct {
	tokens map[string]string
}

func (m *mockSessions) Start(ctx context.Context, input session.StartInput) (session.StartOutput, error) {
	return session.StartOutput{}, nil
}

func (m *mockSessions) End(ctx context.Context, sessionID string) error { return nil }

func (m *mockSessions) Resolve(ctx context.Context, sessionID string) (model.Scope, error) {
	tok, ok := m.tokens[sessionID]
	if !ok {
		return model.Scope{}, session.ErrNoSession
	}
	return model.Scope{SessionID: sessionID, Token: tok}, nil
}

func newTestRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		sc := GetScope(c)
		c.String(http.StatusOK, sc.SessionID+"|"+sc.Token)
	})
	r.GET("/", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	mw := New(pkgLog.NewNop(), &mockSessions{tokens: map[string]string{"s1": "tok-1"}}, Config{CookieName: "kwikr_session"})
	router := newTestRouter(mw, mw.Auth())

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{name: "bearer header", header: "Bearer tok-h", wantStatus: http.StatusOK, wantBody: "|tok-h"},
		{name: "lowercase bearer", header: "bearer tok-h", wantStatus: http.StatusOK, wantBody: "|tok-h"},
		{name: "header wins over cookie", header: "Bearer tok-h", cookie: "s1", wantStatus: http.StatusOK, wantBody: "|tok-h"},
		{name: "cookie", cookie: "s1", wantStatus: http.StatusOK, wantBody: "s1|tok-1"},
		{name: "unknown cookie", cookie: "zz", wantStatus: http.StatusUnauthorized, wantBody: MessageNoSession},
		{name: "nothing", wantStatus: http.StatusUnauthorized, wantBody: `"expired":true`},
		{name: "basic auth ignored", header: "Basic abc", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "kwikr_session", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if w.Code == http.StatusOK {
				if got := w.Body.String(); got != tt.wantBody {
					t.Errorf("scope = %q, want %q", got, tt.wantBody)
				}
				return
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want substring %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	mw := New(pkgLog.NewNop(), &mockSessions{}, Config{CookieName: "kwikr_session"})
	router := newTestRouter(mw, mw.OptionalAuth())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || w.Body.String() != "|" {
		t.Errorf("status = %d body = %q", w.Code, w.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(pkgLog.NewNop(), &mockSessions{}, Config{RateLimitPerMin: 20})
	router := newTestRouter(mw, mw.RateLimit())

	allowed := 0
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		} else if w.Code != http.StatusTooManyRequests {
			t.Fatalf("unexpected status %d", w.Code)
		}
	}
	// burst = 20/10
	if allowed != 2 {
		t.Errorf("allowed %d requests, want burst of 2", allowed)
	}

	// Another client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client status = %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	if newRateLimiter(0) != nil {
		t.Fatalf("zero limit should disable the limiter")
	}
	mw := New(pkgLog.NewNop(), &mockSessions{}, Config{})
	router := newTestRouter(mw, mw.RateLimit())
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d throttled with limiter disabled", i)
		}
	}
}
