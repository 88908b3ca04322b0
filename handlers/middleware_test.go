package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubsphere/backend/auth"
	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/repositories"
	"github.com/clubsphere/backend/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	email string
}

func (v stubVerifier) Verify(_ context.Context, token string) (string, error) {
	if token != "valid-token" {
		return "", auth.ErrInvalidToken
	}
	return v.email, nil
}

// stubUserRepo resolves roles from a fixed map; every other method is unused
// by the middleware under test.
type stubUserRepo struct {
	roles map[string]string
}

func (r stubUserRepo) FindOneByEmail(_ context.Context, email string) (*entities.User, error) {
	role, ok := r.roles[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &entities.User{Email: email, Role: role}, nil
}

func (r stubUserRepo) InsertOne(context.Context, entities.User) error           { return nil }
func (r stubUserRepo) UpdateLastLoggedIn(context.Context, string, string) error { return nil }
func (r stubUserRepo) UpdateRole(context.Context, string, string) error         { return nil }
func (r stubUserRepo) FindAllExcept(context.Context, string) ([]*entities.User, error) {
	return nil, nil
}
func (r stubUserRepo) CountAll(context.Context) (int64, error)            { return 0, nil }
func (r stubUserRepo) CountExcept(context.Context, string) (int64, error) { return 0, nil }

func protectedRouter(verifier auth.TokenVerifier, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{RequireAuth(verifier)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmail)})
	})
	r.GET("/protected", chain...)
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := protectedRouter(stubVerifier{email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized Access!"}`, w.Body.String())
}

func TestRequireAuthBadScheme(t *testing.T) {
	r := protectedRouter(stubVerifier{email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := protectedRouter(stubVerifier{email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAttachesPrincipal(t *testing.T) {
	r := protectedRouter(stubVerifier{email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"alice@example.com"}`, w.Body.String())
}

// Only the exact persisted role passes the gate; other roles and unknown
// users alike get 403.
func TestRequireRole(t *testing.T) {
	userService := services.NewUserService(stubUserRepo{roles: map[string]string{
		"admin@example.com":   entities.RoleAdmin,
		"manager@example.com": entities.RoleClubManager,
		"member@example.com":  entities.RoleMember,
	}})

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "admin@example.com", http.StatusOK},
		{"manager forbidden", "manager@example.com", http.StatusForbidden},
		{"member forbidden", "member@example.com", http.StatusForbidden},
		{"unknown user forbidden", "ghost@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := protectedRouter(stubVerifier{email: tc.email}, RequireRole(userService, entities.RoleAdmin))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer valid-token")
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"Forbidden Access!"}`, w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(rate.NewLimiter(rate.Limit(0), 1)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://clubsphere.example"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	allowed := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://clubsphere.example")
	r.ServeHTTP(allowed, req)
	assert.Equal(t, "https://clubsphere.example", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(denied, req)
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://clubsphere.example"))
	r.POST("/clubs", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/clubs", nil)
	req.Header.Set("Origin", "https://clubsphere.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://clubsphere.example", w.Header().Get("Access-Control-Allow-Origin"))
}
