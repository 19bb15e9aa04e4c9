package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/course"
)

type courseRow struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Code        string    `db:"code"`
	Description string    `db:"description"`
	Duration    int       `db:"duration"`
	Coordinator string    `db:"coordinator"`
	Price       float64   `db:"price"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row courseRow) course() course.Course {
	return course.Course{
		ID:          row.ID,
		Name:        row.Name,
		Code:        row.Code,
		Description: row.Description,
		Duration:    row.Duration,
		Coordinator: row.Coordinator,
		Price:       row.Price,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt.UTC(),
	}
}

type shiftRow struct {
	ID        int    `db:"id"`
	CourseID  int    `db:"course_id"`
	Name      string `db:"name"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Weekdays  string `db:"weekdays"`
	Active    bool   `db:"active"`
}

func (row shiftRow) shift() course.Shift {
	return course.Shift(row)
}

type modalityRow struct {
	ID          int    `db:"id"`
	CourseID    int    `db:"course_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Active      bool   `db:"active"`
}

func (row modalityRow) modality() course.Modality {
	return course.Modality(row)
}

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) course.Repository {
	return &courseRepository{db: db}
}

// Courses

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	err := repo.db.GetContext(ctx, &crs.ID,
		`INSERT INTO course (name, code, description, duration, coordinator, price, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		crs.Name, crs.Code, crs.Description, crs.Duration, crs.Coordinator, crs.Price, crs.Active, crs.CreatedAt,
	)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id int) (course.Course, error) {
	var row courseRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM course WHERE id = $1`, id)
	if err != nil {
		return course.Course{}, trapNoRowsErr(err, course.ErrNotFound, "getting course")
	}
	return row.course(), nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var rows []courseRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM course ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	crss := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		crss = append(crss, row.course())
	}
	return crss, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE course
		 SET name = $2, code = $3, description = $4, duration = $5, coordinator = $6, price = $7, active = $8
		 WHERE id = $1`,
		crs.ID, crs.Name, crs.Code, crs.Description, crs.Duration, crs.Coordinator, crs.Price, crs.Active,
	)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "updating course")
	}
	if n, err := res.RowsAffected(); err != nil {
		return course.Course{}, errors.Wrap(err, "updating course")
	} else if n == 0 {
		return course.Course{}, course.ErrNotFound
	}
	return crs, nil
}

func (repo *courseRepository) DeleteCourse(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM course WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return nil
}

// Shifts

func (repo *courseRepository) CreateShift(ctx context.Context, sh course.Shift) (course.Shift, error) {
	err := repo.db.GetContext(ctx, &sh.ID,
		`INSERT INTO course_shift (course_id, name, start_time, end_time, weekdays, active)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		sh.CourseID, sh.Name, sh.StartTime, sh.EndTime, sh.Weekdays, sh.Active,
	)
	if err != nil {
		return course.Shift{}, errors.Wrap(err, "inserting shift")
	}
	return sh, nil
}

func (repo *courseRepository) GetShiftByID(ctx context.Context, id int) (course.Shift, error) {
	var row shiftRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM course_shift WHERE id = $1`, id)
	if err != nil {
		return course.Shift{}, trapNoRowsErr(err, course.ErrNotFound, "getting shift")
	}
	return row.shift(), nil
}

func (repo *courseRepository) QueryShiftsByCourseID(ctx context.Context, courseID int) ([]course.Shift, error) {
	var rows []shiftRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM course_shift WHERE course_id = $1 ORDER BY id`, courseID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying shifts")
	}
	shs := make([]course.Shift, 0, len(rows))
	for _, row := range rows {
		shs = append(shs, row.shift())
	}
	return shs, nil
}

func (repo *courseRepository) UpdateShift(ctx context.Context, sh course.Shift) (course.Shift, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE course_shift
		 SET name = $2, start_time = $3, end_time = $4, weekdays = $5, active = $6
		 WHERE id = $1`,
		sh.ID, sh.Name, sh.StartTime, sh.EndTime, sh.Weekdays, sh.Active,
	)
	if err != nil {
		return course.Shift{}, errors.Wrap(err, "updating shift")
	}
	if n, err := res.RowsAffected(); err != nil {
		return course.Shift{}, errors.Wrap(err, "updating shift")
	} else if n == 0 {
		return course.Shift{}, course.ErrNotFound
	}
	return sh, nil
}

func (repo *courseRepository) DeleteShift(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM course_shift WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting shift")
	}
	return nil
}

func (repo *courseRepository) DeleteShiftsByCourseID(ctx context.Context, courseID int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM course_shift WHERE course_id = $1`, courseID); err != nil {
		return errors.Wrap(err, "deleting course shifts")
	}
	return nil
}

// Modalities

func (repo *courseRepository) CreateModality(ctx context.Context, mod course.Modality) (course.Modality, error) {
	err := repo.db.GetContext(ctx, &mod.ID,
		`INSERT INTO course_modality (course_id, name, description, active)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		mod.CourseID, mod.Name, mod.Description, mod.Active,
	)
	if err != nil {
		return course.Modality{}, errors.Wrap(err, "inserting modality")
	}
	return mod, nil
}

func (repo *courseRepository) GetModalityByID(ctx context.Context, id int) (course.Modality, error) {
	var row modalityRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM course_modality WHERE id = $1`, id)
	if err != nil {
		return course.Modality{}, trapNoRowsErr(err, course.ErrNotFound, "getting modality")
	}
	return row.modality(), nil
}

func (repo *courseRepository) QueryModalitiesByCourseID(ctx context.Context, courseID int) ([]course.Modality, error) {
	var rows []modalityRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM course_modality WHERE course_id = $1 ORDER BY id`, courseID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying modalities")
	}
	mods := make([]course.Modality, 0, len(rows))
	for _, row := range rows {
		mods = append(mods, row.modality())
	}
	return mods, nil
}

func (repo *courseRepository) UpdateModality(ctx context.Context, mod course.Modality) (course.Modality, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE course_modality SET name = $2, description = $3, active = $4 WHERE id = $1`,
		mod.ID, mod.Name, mod.Description, mod.Active,
	)
	if err != nil {
		return course.Modality{}, errors.Wrap(err, "updating modality")
	}
	if n, err := res.RowsAffected(); err != nil {
		return course.Modality{}, errors.Wrap(err, "updating modality")
	} else if n == 0 {
		return course.Modality{}, course.ErrNotFound
	}
	return mod, nil
}

func (repo *courseRepository) DeleteModality(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM course_modality WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting modality")
	}
	return nil
}

func (repo *courseRepository) DeleteModalitiesByCourseID(ctx context.Context, courseID int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM course_modality WHERE course_id = $1`, courseID); err != nil {
		return errors.Wrap(err, "deleting course modalities")
	}
	return nil
}
