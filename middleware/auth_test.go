package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studyhub/config"
	"studyhub/model"
	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

type stubResolver struct {
	user *model.User
	err  error
}

func (s stubResolver) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return s.user, s.err
}

func authTestRouter(cfg *config.Config, resolver UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(cfg, resolver), func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":    identity.UserID,
			"has_record": identity.User != nil,
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	services.InitJWT("test_secret_key", time.Hour, 24*time.Hour)
	enforced := &config.Config{AuthMode: config.AuthEnforced}

	knownUser := &model.User{UserID: "user-1", Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name       string
		cfg        *config.Config
		resolver   UserResolver
		setupAuth  func(t *testing.T) string
		wantStatus int
		check      func(t *testing.T, body map[string]interface{})
	}{
		{
			name:     "bypass mode attaches placeholder identity",
			cfg:      &config.Config{AuthMode: config.AuthBypassed},
			resolver: stubResolver{},
			setupAuth: func(t *testing.T) string {
				return ""
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["user_id"] != BypassUserID {
					t.Errorf("expected placeholder identity, got %v", body["user_id"])
				}
			},
		},
		{
			name:     "missing header",
			cfg:      enforced,
			resolver: stubResolver{user: knownUser},
			setupAuth: func(t *testing.T) string {
				return ""
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "header without bearer prefix",
			cfg:      enforced,
			resolver: stubResolver{user: knownUser},
			setupAuth: func(t *testing.T) string {
				return "Basic dXNlcjpwYXNz"
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "malformed token",
			cfg:      enforced,
			resolver: stubResolver{user: knownUser},
			setupAuth: func(t *testing.T) string {
				return "Bearer not-a-jwt"
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			cfg:      enforced,
			resolver: stubResolver{user: knownUser},
			setupAuth: func(t *testing.T) string {
				services.InitJWT("test_secret_key", -time.Minute, 24*time.Hour)
				token, err := services.GenerateToken("user-1")
				if err != nil {
					t.Fatalf("GenerateToken failed: %v", err)
				}
				services.InitJWT("test_secret_key", time.Hour, 24*time.Hour)
				return "Bearer " + token
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "refresh token rejected as access token",
			cfg:      enforced,
			resolver: stubResolver{user: knownUser},
			setupAuth: func(t *testing.T) string {
				token, err := services.GenerateRefreshToken("user-1")
				if err != nil {
					t.Fatalf("GenerateRefreshToken failed: %v", err)
				}
				return "Bearer " + token
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "valid token with backing record",
			cfg:      enforced,
			resolver: stubResolver{user: knownUser},
			setupAuth: func(t *testing.T) string {
				token, _ := services.GenerateToken("user-1")
				return "Bearer " + token
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["user_id"] != "user-1" {
					t.Errorf("expected user-1, got %v", body["user_id"])
				}
				if body["has_record"] != true {
					t.Error("expected a record-backed identity")
				}
			},
		},
		{
			name:     "lookup failure falls back to token-only identity",
			cfg:      enforced,
			resolver: stubResolver{err: errors.New("store unavailable")},
			setupAuth: func(t *testing.T) string {
				token, _ := services.GenerateToken("user-1")
				return "Bearer " + token
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["user_id"] != "user-1" {
					t.Errorf("expected user-1, got %v", body["user_id"])
				}
				if body["has_record"] != false {
					t.Error("expected a token-only identity")
				}
			},
		},
		{
			name:     "missing record falls back to token-only identity",
			cfg:      enforced,
			resolver: stubResolver{},
			setupAuth: func(t *testing.T) string {
				token, _ := services.GenerateToken("user-1")
				return "Bearer " + token
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				if body["has_record"] != false {
					t.Error("expected a token-only identity")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authTestRouter(tt.cfg, tt.resolver)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if auth := tt.setupAuth(t); auth != "" {
				req.Header.Set("Authorization", auth)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tt.wantStatus, w.Code, w.Body.String())
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}

			if tt.wantStatus != http.StatusOK {
				if success, ok := body["success"].(bool); !ok || success {
					t.Errorf("error responses must carry success=false, got %v", body)
				}
			}
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestAuthMiddlewareUnconfiguredSecret(t *testing.T) {
	services.InitJWT("test_secret_key", time.Hour, 24*time.Hour)
	token, err := services.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// Misconfiguration is a server fault, not a client one
	services.InitJWT("", time.Hour, 24*time.Hour)
	defer services.InitJWT("test_secret_key", time.Hour, 24*time.Hour)

	router := authTestRouter(&config.Config{AuthMode: config.AuthEnforced}, stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for unconfigured secret, got %d", w.Code)
	}

	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
}
