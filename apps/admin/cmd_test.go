package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/easymatricula/matricula/core/user"
	dummydb "github.com/easymatricula/matricula/storage/database/dummy"
)

var usrSvc *user.Service

func setup(t *testing.T) *commandLine {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	usrSvc = user.NewService(dummydb.NewUserRepository(db))

	// start CLI; db stays nil as with the in-memory backend
	return &commandLine{
		usrSvc: usrSvc,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	t.Run("in-memory backend", func(t *testing.T) {
		err := cli.run([]string{"admin", "migrate", "up"})
		if err == nil || err.Error() != "migrations require the postgres backend" {
			t.Errorf("cli.run() error = %v", err)
		}
	})

	cli.db = sqlx.NewDb(new(sql.DB), "postgres")

	var gotCommand string
	var gotArgs []string
	migrateFunc = func(command string, db *sql.DB, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "redo", "reset", "status", "version", "fix", "up-to", "down-to", "create":
			gotCommand = command
			gotArgs = args
			return nil
		default:
			return fmt.Errorf("%q: no such command", command)
		}
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "up-to forwards args", args: []string{"migrate", "up-to", "2"}},
		{name: "create forwards args", args: []string{"migrate", "create", "course", "sql"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
				return
			}
			if tt.wantErr != nil || tt.wantErrStr != "" {
				t.Errorf("cli.run() expected an error")
				return
			}
			if gotCommand != tt.args[1] {
				t.Errorf("migrateFunc command = %s, want %s", gotCommand, tt.args[1])
			}
			if len(tt.args) > 2 && len(gotArgs) != len(tt.args)-2 {
				t.Errorf("migrateFunc args = %v, want %v", gotArgs, tt.args[2:])
			}
		})
	}
}

func Test_commandLine_addAdmin(t *testing.T) {
	cli := setup(t)

	existing, err := usrSvc.Create(context.Background(), user.NewUser{
		Username: "ana", Password: "s3cr3t!", PasswordConfirm: "s3cr3t!",
	}, false)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addadmin"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"addadmin", "-username", "root"}, wantErr: errHelp},
		{name: "creates admin", args: []string{"addadmin", "-username", "root"}, extra: extra{pwd: "s3cr3t!"}},
		{name: "promotes existing user", args: []string{"addadmin", "-username", existing.Username}, extra: extra{pwd: "st1ll-s3cr3t"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				usr, err := usrSvc.GetByUsername(context.Background(), args[3])
				if err != nil {
					t.Fatalf("GetByUsername() failed: %v", err)
				}
				if !usr.IsAdmin {
					t.Error("account was not granted admin")
				}
			}
		})
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	usr, err := usrSvc.Create(context.Background(), user.NewUser{
		Username: "ana", Password: "s3cr3t!", PasswordConfirm: "s3cr3t!",
	}, false)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"resetpassword", "-username", "lol"}, wantErr: errHelp},
		{name: "user not found", args: []string{"resetpassword", "-username", "lol"}, extra: extra{pwd: "lol"}, wantErr: user.ErrNotFound},
		{name: "resets password", args: []string{"resetpassword", "-username", usr.Username}, extra: extra{pwd: "n3w-s3cr3t"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			refreshed, err := usrSvc.GetByUsername(context.Background(), usr.Username)
			if err != nil {
				t.Fatalf("GetByUsername() failed: %v", err)
			}
			if bytes.Equal(refreshed.PasswordHash, usr.PasswordHash) {
				t.Error("failed to update new password")
			}
		})
	}
}
