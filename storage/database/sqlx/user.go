package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/user"
)

type userRow struct {
	ID           int          `db:"id"`
	Username     string       `db:"username"`
	IsAdmin      bool         `db:"is_admin"`
	PasswordHash []byte       `db:"password_hash"`
	CreatedAt    time.Time    `db:"created_at"`
	LastLogin    sql.NullTime `db:"last_login"`
}

func (row userRow) user() user.User {
	usr := user.User{
		ID:           row.ID,
		Username:     row.Username,
		IsAdmin:      row.IsAdmin,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}
	if row.LastLogin.Valid {
		usr.LastLogin = row.LastLogin.Time.UTC()
	}
	return usr
}

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckUsernameUniqueness(ctx context.Context, username string, excluded ...user.User) error {
	ids := make([]int, 0, len(excluded))
	for _, usr := range excluded {
		ids = append(ids, usr.ID)
	}

	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM app_user WHERE username = $1 AND id != ALL($2))`,
		username, pq.Array(ids),
	)
	if err != nil {
		return errors.Wrap(err, "checking username uniqueness")
	}
	if exists {
		return user.ErrUsernameExists
	}
	return nil
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	err := repo.db.GetContext(ctx, &usr.ID,
		`INSERT INTO app_user (username, is_admin, password_hash, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		usr.Username, usr.IsAdmin, usr.PasswordHash, usr.CreatedAt,
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var row userRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM app_user WHERE id = $1`, id)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user")
	}
	return row.user(), nil
}

func (repo *userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var row userRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM app_user WHERE username = $1`, username)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user")
	}
	return row.user(), nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	lastLogin := sql.NullTime{Time: usr.LastLogin, Valid: !usr.LastLogin.IsZero()}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE app_user SET username = $2, is_admin = $3, password_hash = $4, last_login = $5 WHERE id = $1`,
		usr.ID, usr.Username, usr.IsAdmin, usr.PasswordHash, lastLogin,
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if n, err := res.RowsAffected(); err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	} else if n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}
