package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geoattend/geoattend-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithRole(t *testing.T, role user.Role) *http.Request {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": "u1",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body.Error.Message
}

func TestAdminOnly(t *testing.T) {
	var called bool
	handler := AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(t, user.RoleAdmin))
	assert.True(t, called)

	called = false
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(t, user.RoleSupervisor))
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin privilege required", errorMessage(t, rec))
}

func TestReviewerOnly(t *testing.T) {
	var called bool
	handler := ReviewerOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for _, role := range []user.Role{user.RoleAdmin, user.RoleSupervisor} {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithRole(t, role))
		assert.True(t, called, "role %s may read other users' records", role)
	}

	called = false
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(t, user.RoleTeacher))
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin or supervisor privilege required", errorMessage(t, rec))
}
