package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easymatricula/matricula/core"
	"github.com/easymatricula/matricula/core/chat"
	"github.com/easymatricula/matricula/core/course"
	"github.com/easymatricula/matricula/core/document"
	"github.com/easymatricula/matricula/core/form"
	"github.com/easymatricula/matricula/core/student"
	"github.com/easymatricula/matricula/core/user"
	emailsvc "github.com/easymatricula/matricula/services/email"
	dummydb "github.com/easymatricula/matricula/storage/database/dummy"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

type testLogger struct{}

func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (Server, ServerDeps) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	conf := core.NewConfig()
	conf.Debug = false
	conf.TestMode = true

	deps := ServerDeps{
		Conf:       conf,
		Logger:     testLogger{},
		FormSvc:    form.NewService(dummydb.NewFormFieldRepository(db), dummydb.NewRequirementRepository(db)),
		StudentSvc: student.NewService(dummydb.NewStudentRepository(db), emailsvc.NewConsoleServiceMock(conf), conf),
		DocSvc:     document.NewService(dummydb.NewDocumentRepository(db)),
		ChatSvc:    chat.NewService(dummydb.NewMessageRepository(db)),
		CourseSvc:  course.NewService(dummydb.NewCourseRepository(db)),
		UserSvc:    user.NewService(dummydb.NewUserRepository(db)),
	}
	return NewServer(deps), deps
}

func createUser(t *testing.T, deps ServerDeps, uname, pwd string, isAdmin bool) user.User {
	usr, err := deps.UserSvc.Create(context.Background(), user.NewUser{
		Username:        uname,
		Password:        pwd,
		PasswordConfirm: pwd,
	}, isAdmin)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func getToken(t *testing.T, deps ServerDeps, usr user.User) string {
	token, err := GenerateToken(deps.Conf, GetUserClaims(deps.Conf, usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
