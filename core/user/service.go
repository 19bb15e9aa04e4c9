package user

import (
	"context"
	"errors"
	"time"

	"github.com/easymatricula/matricula/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(ctx context.Context, username string, excluded ...User) error
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		GetUserByUsername(ctx context.Context, username string) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(uname string, exclUsers ...User) error {
	if err := svc.repo.CheckUsernameUniqueness(context.Background(), uname, exclUsers...); err != nil {
		if err == ErrUsernameExists {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nu NewUser, isAdmin bool) (User, error) {
	usr := User{
		Username:  nu.Username,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByUsername(ctx context.Context, uname string) (User, error) {
	return svc.repo.GetUserByUsername(ctx, core.CleanString(uname, true /* lower */))
}

func (svc *Service) SetLastLogin(ctx context.Context, usr User) (User, error) {
	usr.LastLogin = time.Now().UTC()
	return svc.repo.UpdateUser(ctx, usr)
}

// ResetPassword replaces the user's password, looked up by username.
func (svc *Service) ResetPassword(ctx context.Context, uname, pwd string) error {
	usr, err := svc.GetByUsername(ctx, uname)
	if err != nil {
		return err
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	_, err = svc.repo.UpdateUser(ctx, usr)
	return err
}

// EnsureAdmin creates (or promotes) the named admin account. Used by the
// bootstrap and the admin CLI.
func (svc *Service) EnsureAdmin(ctx context.Context, uname, pwd string) (User, error) {
	uname = core.CleanString(uname, true /* lower */)

	usr, err := svc.repo.GetUserByUsername(ctx, uname)
	if err != nil {
		if err != ErrNotFound {
			return User{}, err
		}
		usr = User{Username: uname, CreatedAt: time.Now().UTC()}
		usr.IsAdmin = true
		if err := usr.SetPassword(pwd); err != nil {
			return User{}, err
		}
		return svc.repo.CreateUser(ctx, usr)
	}

	usr.IsAdmin = true
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			return User{}, err
		}
	}
	return svc.repo.UpdateUser(ctx, usr)
}
