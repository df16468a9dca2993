package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := setupTestRouter(t, func(d *Deps) { d.DevLogin = true })

	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/login", map[string]string{"name": "Nadia"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var first LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.NotEmpty(t, first.Token)
	assert.Equal(t, "Nadia", first.User.Name)
	assert.NotEmpty(t, first.User.ID)

	w = performRequest(env.router, http.MethodPost, "/api/v1/auth/login", map[string]string{"name": "Nadia"}, "")
	var second LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.User.ID, second.User.ID, "same name maps to the same user")

	w = performRequest(env.router, http.MethodGet, "/api/v1/auth/me", nil, first.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"`+first.User.ID+`","name":"Nadia"}`, w.Body.String())
}

func TestLoginValidation(t *testing.T) {
	env := setupTestRouter(t, func(d *Deps) { d.DevLogin = true })

	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/login", map[string]string{"avatar": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginDisabled(t *testing.T) {
	env := setupTestRouter(t)

	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/login", map[string]string{"name": "Nadia"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(env.router, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
