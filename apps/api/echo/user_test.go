package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymatricula/matricula/core/user"
)

func Test_authApi_login(t *testing.T) {
	srv, deps := setup(t)

	usr := createUser(t, deps, "ana", "s3cr3t!", false)

	t.Run("valid credentials", func(t *testing.T) {
		body := marchallObj(t, LoginRequest{Username: "Ana", Password: "s3cr3t!"}) // cleaned to lower
		req, rec := newRequest(http.MethodPost, "/api/login", body)
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)

		// a successful login stamps last_login
		got, err := deps.UserSvc.GetByID(context.Background(), usr.ID)
		require.NoError(t, err)
		assert.False(t, got.LastLogin.IsZero())
	})

	failures := []httpTest{
		{name: "wrong password", body: marchallObj(t, LoginRequest{Username: "ana", Password: "nope"})},
		{name: "unknown user", body: marchallObj(t, LoginRequest{Username: "ghost", Password: "s3cr3t!"})},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/api/login", tt.body)
			srv.ServeHTTP(rec, req)

			tt.wantCode = http.StatusBadRequest
			tt.wantData = marchallObj(t, httpErr{Error: "authentication failed"})
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("missing fields", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/login", []byte(`{}`))
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func Test_authApi_register(t *testing.T) {
	srv, deps := setup(t)

	t.Run("valid payload", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{Username: "ana", Password: "s3cr3t!", PasswordConfirm: "s3cr3t!"})
		req, rec := newRequest(http.MethodPost, "/api/register", body)
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		got, err := deps.UserSvc.GetByUsername(context.Background(), "ana")
		require.NoError(t, err)
		assert.False(t, got.IsAdmin, "self-registration never grants admin")
		assert.NoError(t, got.CheckPassword("s3cr3t!"))
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("password mismatch", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{Username: "bob", Password: "s3cr3t!", PasswordConfirm: "other"})
		req, rec := newRequest(http.MethodPost, "/api/register", body)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{Username: "ana", Password: "s3cr3t!", PasswordConfirm: "s3cr3t!"})
		req, rec := newRequest(http.MethodPost, "/api/register", body)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func Test_authApi_retrieve(t *testing.T) {
	srv, deps := setup(t)

	usr := createUser(t, deps, "ana", "s3cr3t!", false)
	token := getToken(t, deps, usr)

	t.Run("with token", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/user", token)
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, usr.ID, got.ID)
		assert.Equal(t, "ana", got.Username)
	})

	t.Run("without token", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/user")
		srv.ServeHTTP(rec, req)

		checkCodeAndData(t, httpTest{
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		}, rec)
	})
}
