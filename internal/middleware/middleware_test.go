package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/jmagwili/launchpad-jia/internal/auth"
	"github.com/jmagwili/launchpad-jia/internal/database"
	"github.com/jmagwili/launchpad-jia/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func protectedEngine() *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(testDB), func(c *gin.Context) {
		u, exist := c.Get("user")
		if !exist {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
	})
	return r
}

func TestRequireAuth_validToken(t *testing.T) {
	token, err := auth.GenerateToken(database.TestRecruiter1.ID)
	require.NoError(t, err)

	rec, body := testutil.MakeJSONRequest(nil, token, protectedEngine(), "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["ok"])
}

func TestRequireAuth_missingHeader(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	protectedEngine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "invalid authorization header")
}

func TestRequireAuth_unknownUser(t *testing.T) {
	token, err := auth.GenerateToken(uuid.New())
	require.NoError(t, err)

	rec, body := testutil.MakeJSONRequest(nil, token, protectedEngine(), "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body["error"], "User not exist")
}

func TestRequireAuth_expiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    auth.JwtIssuer,
		Subject:   database.TestRecruiter1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	})
	signed, err := expired.SignedString([]byte(os.Getenv("SECRET_KEY")))
	require.NoError(t, err)

	rec, body := testutil.MakeJSONRequest(nil, signed, protectedEngine(), "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token expired", body["error"])
}

func TestRequireAuth_wrongIssuer(t *testing.T) {
	badIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   database.TestRecruiter1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := badIssuer.SignedString([]byte(os.Getenv("SECRET_KEY")))
	require.NoError(t, err)

	rec, body := testutil.MakeJSONRequest(nil, signed, protectedEngine(), "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token issuer", body["error"])
}

func TestSizeLimit_rejectsOversizedBody(t *testing.T) {
	r := gin.New()
	r.POST("/limited", SizeLimit(64), func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	small, _ := http.NewRequest(http.MethodPost, "/limited", strings.NewReader(`{"a":1}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, small)
	assert.Equal(t, http.StatusOK, rec.Code)

	big, _ := http.NewRequest(http.MethodPost, "/limited", strings.NewReader(strings.Repeat("x", 256)))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
