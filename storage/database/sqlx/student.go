package sqlxrepos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/student"
)

type studentRow struct {
	ID               int            `db:"id"`
	Status           string         `db:"status"`
	RegistrationDate time.Time      `db:"registration_date"`
	Data             types.JSONText `db:"data"`
}

func newStudentRow(std student.Student) (studentRow, error) {
	data := std.Data
	if data == nil {
		data = map[string]string{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return studentRow{}, errors.Wrap(err, "encoding student data")
	}
	return studentRow{
		ID:               std.ID,
		Status:           std.Status,
		RegistrationDate: std.RegistrationDate,
		Data:             types.JSONText(raw),
	}, nil
}

func (row studentRow) student() (student.Student, error) {
	std := student.Student{
		ID:               row.ID,
		Status:           row.Status,
		RegistrationDate: row.RegistrationDate.UTC(),
		Data:             map[string]string{},
	}
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &std.Data); err != nil {
			return student.Student{}, errors.Wrap(err, "decoding student data")
		}
	}
	return std, nil
}

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	row, err := newStudentRow(std)
	if err != nil {
		return student.Student{}, err
	}
	err = repo.db.GetContext(ctx, &row.ID,
		`INSERT INTO student (status, registration_date, data) VALUES ($1, $2, $3) RETURNING id`,
		row.Status, row.RegistrationDate, row.Data,
	)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	return row.student()
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	var row studentRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM student WHERE id = $1`, id)
	if err != nil {
		return student.Student{}, trapNoRowsErr(err, student.ErrNotFound, "getting student")
	}
	return row.student()
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM student ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	stds := make([]student.Student, 0, len(rows))
	for _, row := range rows {
		std, err := row.student()
		if err != nil {
			return nil, err
		}
		stds = append(stds, std)
	}
	return stds, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	row, err := newStudentRow(std)
	if err != nil {
		return student.Student{}, err
	}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE student SET status = $2, data = $3 WHERE id = $1`,
		row.ID, row.Status, row.Data,
	)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "updating student")
	}
	if n, err := res.RowsAffected(); err != nil {
		return student.Student{}, errors.Wrap(err, "updating student")
	} else if n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return row.student()
}
