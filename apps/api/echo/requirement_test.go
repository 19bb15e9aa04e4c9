package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymatricula/matricula/core/form"
)

func createTestRequirement(t *testing.T, deps ServerDeps, name string) form.DocumentRequirement {
	req, err := deps.FormSvc.CreateRequirement(context.Background(), form.NewDocumentRequirement{
		Name:     name,
		Required: true,
	})
	if err != nil {
		t.Fatalf("createTestRequirement(%s) failed: %v", name, err)
	}
	return req
}

func Test_requirementApi_query(t *testing.T) {
	srv, deps := setup(t)

	rg := createTestRequirement(t, deps, "RG")
	cpf := createTestRequirement(t, deps, "CPF")

	inactive := false
	cpf, err := deps.FormSvc.UpdateRequirement(context.Background(), cpf.ID, form.UpdateDocumentRequirement{Active: &inactive})
	require.NoError(t, err)

	tests := []httpTest{
		{name: "checklist view", path: "/api/document-requirements",
			wantCode: http.StatusOK, wantData: marchallObj(t, []form.DocumentRequirement{rg, cpf})},
		{name: "active only", path: "/api/document-requirements?active=true",
			wantCode: http.StatusOK, wantData: marchallObj(t, []form.DocumentRequirement{rg})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_requirementApi_adminGate(t *testing.T) {
	srv, deps := setup(t)

	visitor := createUser(t, deps, "visitor", "s3cr3t!", false)
	visitorToken := getToken(t, deps, visitor)

	body := marchallObj(t, form.NewDocumentRequirement{Name: "RG"})

	tests := []httpTest{
		{name: "no token", method: http.MethodPost, path: "/api/admin/document-requirements", body: body,
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "non-admin", method: http.MethodPost, path: "/api/admin/document-requirements", body: body, token: visitorToken,
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_requirementApi_crud(t *testing.T) {
	srv, deps := setup(t)

	admin := createUser(t, deps, "admin", "s3cr3t!", true)
	token := getToken(t, deps, admin)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		body := marchallObj(t, form.NewDocumentRequirement{Name: "RG", Description: "Documento de identidade", Required: true})
		req, rec := newAuthRequest(http.MethodPost, "/api/admin/document-requirements", token, body)
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		got, err := deps.FormSvc.GetRequirement(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Order)
		assert.True(t, got.Active)
	})

	t.Run("create: duplicate name", func(t *testing.T) {
		body := marchallObj(t, form.NewDocumentRequirement{Name: "RG"})
		req, rec := newAuthRequest(http.MethodPost, "/api/admin/document-requirements", token, body)
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/api/admin/document-requirements/1", token, []byte(`{"required": false}`))
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		got, err := deps.FormSvc.GetRequirement(ctx, 1)
		require.NoError(t, err)
		assert.False(t, got.Required)
		assert.Equal(t, "RG", got.Name)
	})

	t.Run("update: unknown id", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/api/admin/document-requirements/404", token, []byte(`{"required": false}`))
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("destroy", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/api/admin/document-requirements/1", token)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		_, err := deps.FormSvc.GetRequirement(ctx, 1)
		assert.Equal(t, form.ErrNotFound, err)

		// absent id is a silent success
		req, rec = newAuthRequest(http.MethodDelete, "/api/admin/document-requirements/1", token)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func Test_requirementApi_reorderAndMove(t *testing.T) {
	srv, deps := setup(t)

	admin := createUser(t, deps, "admin", "s3cr3t!", true)
	token := getToken(t, deps, admin)
	ctx := context.Background()

	createTestRequirement(t, deps, "RG")
	createTestRequirement(t, deps, "CPF")
	createTestRequirement(t, deps, "Foto 3x4")

	reqNames := func(t *testing.T) []string {
		reqs, err := deps.FormSvc.QueryAllRequirements(ctx)
		require.NoError(t, err)
		names := make([]string, len(reqs))
		for i, req := range reqs {
			names[i] = req.Name
		}
		return names
	}

	t.Run("full permutation", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/api/admin/document-requirements/order", token,
			[]byte(`{"ids": [3, 1, 2]}`))
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Foto 3x4", "RG", "CPF"}, reqNames(t))
	})

	t.Run("partial list rejected", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/api/admin/document-requirements/order", token,
			[]byte(`{"ids": [1]}`))
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("move", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/admin/document-requirements/move", token,
			[]byte(`{"source_index": 0, "destination_index": 2}`))
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"RG", "CPF", "Foto 3x4"}, reqNames(t))
	})

	t.Run("move: index out of range", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/admin/document-requirements/move", token,
			[]byte(`{"source_index": 0, "destination_index": 9}`))
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
