package handlers_test

import (
	"net/http"
	"testing"

	"github.com/mrivera/user-auth-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getUserInfo(t *testing.T, ts *testutil.TestServer, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL("/userinfo"), nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestUserHandler_UserInfo(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().
		WithUsername("profileuser").
		WithEmail("profileuser@example.com").
		BuildAndLogin(t, ts)

	resp := getUserInfo(t, ts, token)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		User map[string]interface{} `json:"user"`
	}
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, user.ID.String(), result.User["id"])
	assert.Equal(t, user.Username, result.User["username"])
	assert.Equal(t, user.Email, result.User["email"])
	assert.NotContains(t, result.User, "passwordHash")
}

func TestUserHandler_UserInfo_Unauthenticated(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getUserInfo(t, ts, "")
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Access denied!")
}

func TestUserHandler_UserInfo_InvalidToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getUserInfo(t, ts, "not.a.token")
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid token!")
}

func TestUserHandler_UserInfo_DeletedUser(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().
		WithUsername("ghostuser").
		WithEmail("ghostuser@example.com").
		BuildAndLogin(t, ts)

	// The token stays valid after the account disappears; the lookup is
	// what answers 404.
	err := ts.DB.DB.Delete(user).Error
	require.NoError(t, err)

	resp := getUserInfo(t, ts, token)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "User not found!")
}
