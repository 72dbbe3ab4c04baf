package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user1094629480/tours-backend/internal/auth"
	"github.com/user1094629480/tours-backend/internal/services/users"
)

// addUser signs a user up and logs them in, returning the created user and
// an access token for authenticated requests.
func addUser(t *testing.T, newUser users.NewUserRequest) (users.User, string) {
	t.Helper()

	jsonData, err := json.Marshal(newUser)
	require.NoError(t, err)

	resp, err := http.Post(testServer.URL+"/signup", "application/json", bytes.NewBuffer(jsonData))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var createdUser users.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&createdUser))

	token := login(t, newUser.Email, newUser.Password)

	return createdUser, token
}

func login(t *testing.T, email, password string) string {
	t.Helper()

	jsonData, err := json.Marshal(auth.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	resp, err := http.Post(testServer.URL+"/login", "application/json", bytes.NewBuffer(jsonData))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp auth.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.AccessToken)

	return loginResp.AccessToken
}

// doJSON sends a JSON request with an optional bearer token.
func doJSON(t *testing.T, method, url string, body any, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)

	return resp
}
