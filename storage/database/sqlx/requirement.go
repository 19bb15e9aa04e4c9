package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/form"
)

type requirementRow struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Required    bool   `db:"required"`
	Active      bool   `db:"active"`
	Order       int    `db:"order"`
}

func newRequirementRow(req form.DocumentRequirement) requirementRow {
	return requirementRow{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Required:    req.Required,
		Active:      req.Active,
		Order:       req.Order,
	}
}

func (row requirementRow) requirement() form.DocumentRequirement {
	return form.DocumentRequirement{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Required:    row.Required,
		Active:      row.Active,
		Order:       row.Order,
	}
}

type requirementRepository struct {
	db *sqlx.DB
}

var _ form.RequirementRepository = (*requirementRepository)(nil) // interface compliance check

func NewRequirementRepository(db *sqlx.DB) form.RequirementRepository {
	return &requirementRepository{db: db}
}

func (repo *requirementRepository) CheckRequirementNameUniqueness(ctx context.Context, name string, excluded ...form.DocumentRequirement) error {
	ids := make([]int, 0, len(excluded))
	for _, req := range excluded {
		ids = append(ids, req.ID)
	}

	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM document_requirement WHERE name = $1 AND id != ALL($2))`,
		name, pq.Array(ids),
	)
	if err != nil {
		return errors.Wrap(err, "checking requirement uniqueness")
	}
	if exists {
		return form.ErrNameExists
	}
	return nil
}

func (repo *requirementRepository) CreateRequirement(ctx context.Context, req form.DocumentRequirement) (form.DocumentRequirement, error) {
	row := newRequirementRow(req)
	err := repo.db.GetContext(ctx, &row.ID,
		`INSERT INTO document_requirement (name, description, required, active, "order")
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		row.Name, row.Description, row.Required, row.Active, row.Order,
	)
	if err != nil {
		return form.DocumentRequirement{}, errors.Wrap(err, "inserting requirement")
	}
	return row.requirement(), nil
}

func (repo *requirementRepository) QueryAllRequirements(ctx context.Context) ([]form.DocumentRequirement, error) {
	var rows []requirementRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM document_requirement`)
	if err != nil {
		return nil, errors.Wrap(err, "querying requirements")
	}
	reqs := make([]form.DocumentRequirement, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, row.requirement())
	}
	return reqs, nil
}

func (repo *requirementRepository) GetRequirementByID(ctx context.Context, id int) (form.DocumentRequirement, error) {
	var row requirementRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM document_requirement WHERE id = $1`, id)
	if err != nil {
		return form.DocumentRequirement{}, trapNoRowsErr(err, form.ErrNotFound, "getting requirement")
	}
	return row.requirement(), nil
}

func (repo *requirementRepository) UpdateRequirement(ctx context.Context, req form.DocumentRequirement) (form.DocumentRequirement, error) {
	row := newRequirementRow(req)
	res, err := repo.db.ExecContext(ctx,
		`UPDATE document_requirement
		 SET name = $2, description = $3, required = $4, active = $5, "order" = $6
		 WHERE id = $1`,
		row.ID, row.Name, row.Description, row.Required, row.Active, row.Order,
	)
	if err != nil {
		return form.DocumentRequirement{}, errors.Wrap(err, "updating requirement")
	}
	if n, err := res.RowsAffected(); err != nil {
		return form.DocumentRequirement{}, errors.Wrap(err, "updating requirement")
	} else if n == 0 {
		return form.DocumentRequirement{}, form.ErrNotFound
	}
	return row.requirement(), nil
}

func (repo *requirementRepository) DeleteRequirement(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM document_requirement WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting requirement")
	}
	return nil
}

func (repo *requirementRepository) SetRequirementOrders(ctx context.Context, ids []int) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "reordering requirements")
	}
	defer func() { _ = tx.Rollback() }()

	for i, id := range ids {
		res, err := tx.ExecContext(ctx, `UPDATE document_requirement SET "order" = $1 WHERE id = $2`, i+1, id)
		if err != nil {
			return errors.Wrap(err, "reordering requirements")
		}
		if n, err := res.RowsAffected(); err != nil {
			return errors.Wrap(err, "reordering requirements")
		} else if n == 0 {
			return form.ErrNotFound
		}
	}
	return errors.Wrap(tx.Commit(), "reordering requirements")
}
