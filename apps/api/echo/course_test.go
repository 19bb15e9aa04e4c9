package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymatricula/matricula/core/course"
)

func Test_courseApi_catalog(t *testing.T) {
	srv, deps := setup(t)
	require.NoError(t, deps.CourseSvc.SeedDefaults(context.Background()))

	t.Run("list", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/courses")
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var crss []course.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crss))
		assert.Len(t, crss, 5)
	})

	t.Run("shifts and modalities of a course", func(t *testing.T) {
		for _, path := range []string{"/api/courses/1/shifts", "/api/courses/1/modalities"} {
			req, rec := newRequest(http.MethodGet, path)
			srv.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, path)

			var items []map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
			assert.Len(t, items, 3, path)
		}
	})

	t.Run("unknown course", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/courses/404")
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_courseApi_admin(t *testing.T) {
	srv, deps := setup(t)

	admin := createUser(t, deps, "admin", "s3cr3t!", true)
	token := getToken(t, deps, admin)

	t.Run("unauthenticated create", func(t *testing.T) {
		body := marchallObj(t, course.NewCourse{Name: "Excel Avançado", Code: "EXC", Duration: 3})
		req, rec := newRequest(http.MethodPost, "/api/admin/courses", body)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create course", func(t *testing.T) {
		body := marchallObj(t, course.NewCourse{Name: "Excel Avançado", Code: "EXC", Duration: 3, Price: 490})
		req, rec := newAuthRequest(http.MethodPost, "/api/admin/courses", token, body)
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		crs, err := deps.CourseSvc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, crs.Active)
	})

	t.Run("shift needs an existing course", func(t *testing.T) {
		body := marchallObj(t, course.NewShift{CourseID: 404, Name: "Noite", StartTime: "19:00", EndTime: "22:00", Weekdays: "seg-sex"})
		req, rec := newAuthRequest(http.MethodPost, "/api/admin/course-shifts", token, body)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create shift and modality", func(t *testing.T) {
		body := marchallObj(t, course.NewShift{CourseID: 1, Name: "Noite", StartTime: "19:00", EndTime: "22:00", Weekdays: "seg-sex"})
		req, rec := newAuthRequest(http.MethodPost, "/api/admin/course-shifts", token, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		body = marchallObj(t, course.NewModality{CourseID: 1, Name: "EAD"})
		req, rec = newAuthRequest(http.MethodPost, "/api/admin/course-modalities", token, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("delete course cascades", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/api/admin/courses/1", token)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		shifts, err := deps.CourseSvc.QueryShifts(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, shifts)
	})
}
