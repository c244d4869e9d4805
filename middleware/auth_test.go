package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorchamber/models"
	"doctorchamber/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		email, _ := VerifiedEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestJWTAuthMissingHeaderIsUnauthorized(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidTokenIsForbidden(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthExpiredTokenIsForbidden(t *testing.T) {
	r := protectedRouter()

	token, err := utils.GenerateToken("a@x.com", -time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthValidTokenExposesClaim(t *testing.T) {
	r := protectedRouter()

	token, err := utils.GenerateToken("a@x.com", utils.AccessTokenTTL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

// fakeUserService answers role checks from a fixed admin set.
type fakeUserService struct {
	admins map[string]bool
}

func (f *fakeUserService) Register(u models.User) (string, error)        { return "", nil }
func (f *fakeUserService) GetAll() ([]models.User, error)                { return nil, nil }
func (f *fakeUserService) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserService) Promote(id string) error                       { return nil }
func (f *fakeUserService) IssueToken(email string) (string, error)       { return "", nil }

func (f *fakeUserService) IsAdmin(email string) (bool, error) {
	return f.admins[email], nil
}

func adminRouter(svc *fakeUserService) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(), AdminGateMiddleware(svc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminGateRejectsNonAdmin(t *testing.T) {
	r := adminRouter(&fakeUserService{admins: map[string]bool{}})

	token, err := utils.GenerateToken("user@x.com", utils.AccessTokenTTL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminGateAllowsAdmin(t *testing.T) {
	r := adminRouter(&fakeUserService{admins: map[string]bool{"admin@x.com": true}})

	token, err := utils.GenerateToken("admin@x.com", utils.AccessTokenTTL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
