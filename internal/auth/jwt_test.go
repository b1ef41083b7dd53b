package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashkanani/agency/internal/domain"
)

func testManager() *JWTManager {
	return NewJWTManager("test-secret-at-least-32-characters", time.Hour)
}

func testUser() *domain.User {
	return &domain.User{
		ID: "user-1", Email: "ramla@example.com", Name: "Ramla Ali",
		Role: RoleAgent, AgentID: "agent-1", Active: true,
	}
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	mgr := testManager()

	token, err := mgr.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ramla@example.com", claims.Email)
	assert.Equal(t, RoleAgent, claims.Role)
	assert.Equal(t, "agent-1", claims.AgentID)
	assert.NotEmpty(t, claims.ID)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	token, err := testManager().GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTManager("a-completely-different-signing-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsExpiredToken(t *testing.T) {
	mgr := NewJWTManager("test-secret-at-least-32-characters", -time.Minute)

	token, err := mgr.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsGarbage(t *testing.T) {
	_, err := testManager().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthenticate_SetsClaimsOnContext(t *testing.T) {
	mgr := testManager()
	token, err := mgr.GenerateToken(testUser())
	require.NoError(t, err)

	var gotClaims *Claims
	var gotSubject string
	h := Authenticate(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = ClaimsFromContext(r.Context())
		gotSubject = SubjectFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, RoleAgent, gotClaims.Role)
	assert.Equal(t, "user-1", gotSubject)
}

func TestAuthenticate_RejectsMissingAndMalformedHeaders(t *testing.T) {
	h := Authenticate(testManager())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer bad.token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireRole(t *testing.T) {
	mgr := testManager()

	call := func(role string, allowed ...string) int {
		u := testUser()
		u.Role = role
		token, err := mgr.GenerateToken(u)
		require.NoError(t, err)

		var chain http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		chain = RequireRole(allowed...)(chain)
		chain = Authenticate(mgr)(chain)

		req := httptest.NewRequest(http.MethodPost, "/api/players", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call(RoleOwner, WriteRoles()...))
	assert.Equal(t, http.StatusOK, call(RoleAdmin, WriteRoles()...))
	assert.Equal(t, http.StatusForbidden, call(RoleAgent, WriteRoles()...))
	assert.Equal(t, http.StatusForbidden, call(RoleAdmin, RoleOwner))
}

func TestRequireRole_NoAuthContext(t *testing.T) {
	h := RequireRole(RoleOwner)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/finance", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
