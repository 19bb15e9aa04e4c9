package echoapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymatricula/matricula/core/document"
	"github.com/easymatricula/matricula/core/student"
)

func Test_documentApi(t *testing.T) {
	srv, deps := setup(t)

	std, err := deps.StudentSvc.Create(context.Background(), student.NewStudent{
		Data: map[string]string{"fullName": "Ana Silva"},
	})
	require.NoError(t, err)

	fileData := base64.StdEncoding.EncodeToString([]byte("fake pdf bytes"))

	t.Run("upload", func(t *testing.T) {
		body := marchallObj(t, document.NewDocument{
			StudentID: std.ID,
			Type:      "RG",
			FileName:  "rg.pdf",
			FileData:  fileData,
			MimeType:  "application/pdf",
		})
		req, rec := newRequest(http.MethodPost, "/api/documents", body)
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var doc document.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, std.ID, doc.StudentID)
		assert.False(t, doc.UploadDate.IsZero())
	})

	t.Run("upload: not base64", func(t *testing.T) {
		body := marchallObj(t, document.NewDocument{
			StudentID: std.ID,
			Type:      "RG",
			FileName:  "rg.pdf",
			FileData:  "%% not base64 %%",
			MimeType:  "application/pdf",
		})
		req, rec := newRequest(http.MethodPost, "/api/documents", body)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list by student", func(t *testing.T) {
		docs, err := deps.DocSvc.QueryByStudent(context.Background(), std.ID)
		require.NoError(t, err)

		req, rec := newRequest(http.MethodGet, "/api/students/1/documents")
		srv.ServeHTTP(rec, req)

		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, docs),
		}, rec)
	})
}
