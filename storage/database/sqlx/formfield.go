package sqlxrepos

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/form"
)

type formFieldRow struct {
	ID       int            `db:"id"`
	Name     string         `db:"name"`
	Label    string         `db:"label"`
	Type     string         `db:"type"`
	Required bool           `db:"required"`
	Section  string         `db:"section"`
	Order    int            `db:"order"`
	Active   bool           `db:"active"`
	Options  types.JSONText `db:"options"`
}

func newFormFieldRow(fld form.FormField) (formFieldRow, error) {
	opts := fld.Options
	if opts == nil {
		opts = []form.FieldOption{}
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return formFieldRow{}, errors.Wrap(err, "encoding field options")
	}
	return formFieldRow{
		ID:       fld.ID,
		Name:     fld.Name,
		Label:    fld.Label,
		Type:     fld.Type,
		Required: fld.Required,
		Section:  fld.Section,
		Order:    fld.Order,
		Active:   fld.Active,
		Options:  types.JSONText(raw),
	}, nil
}

func (row formFieldRow) field() (form.FormField, error) {
	fld := form.FormField{
		ID:       row.ID,
		Name:     row.Name,
		Label:    row.Label,
		Type:     row.Type,
		Required: row.Required,
		Section:  row.Section,
		Order:    row.Order,
		Active:   row.Active,
	}
	if len(row.Options) > 0 {
		if err := json.Unmarshal(row.Options, &fld.Options); err != nil {
			return form.FormField{}, errors.Wrap(err, "decoding field options")
		}
	}
	if len(fld.Options) == 0 {
		fld.Options = nil
	}
	return fld, nil
}

type formFieldRepository struct {
	db *sqlx.DB
}

var _ form.FieldRepository = (*formFieldRepository)(nil) // interface compliance check

func NewFormFieldRepository(db *sqlx.DB) form.FieldRepository {
	return &formFieldRepository{db: db}
}

func (repo *formFieldRepository) fields(rows []formFieldRow) ([]form.FormField, error) {
	flds := make([]form.FormField, 0, len(rows))
	for _, row := range rows {
		fld, err := row.field()
		if err != nil {
			return nil, err
		}
		flds = append(flds, fld)
	}
	return flds, nil
}

func (repo *formFieldRepository) CheckFieldNameUniqueness(ctx context.Context, name string, excluded ...form.FormField) error {
	ids := make([]int, 0, len(excluded))
	for _, fld := range excluded {
		ids = append(ids, fld.ID)
	}

	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM form_field WHERE name = $1 AND id != ALL($2))`,
		name, pq.Array(ids),
	)
	if err != nil {
		return errors.Wrap(err, "checking form field uniqueness")
	}
	if exists {
		return form.ErrNameExists
	}
	return nil
}

func (repo *formFieldRepository) CreateFormField(ctx context.Context, fld form.FormField) (form.FormField, error) {
	row, err := newFormFieldRow(fld)
	if err != nil {
		return form.FormField{}, err
	}
	err = repo.db.GetContext(ctx, &row.ID,
		`INSERT INTO form_field (name, label, type, required, section, "order", active, options)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		row.Name, row.Label, row.Type, row.Required, row.Section, row.Order, row.Active, row.Options,
	)
	if err != nil {
		return form.FormField{}, errors.Wrap(err, "inserting form field")
	}
	return row.field()
}

func (repo *formFieldRepository) QueryAllFormFields(ctx context.Context) ([]form.FormField, error) {
	var rows []formFieldRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM form_field`)
	if err != nil {
		return nil, errors.Wrap(err, "querying form fields")
	}
	return repo.fields(rows)
}

func (repo *formFieldRepository) GetFormFieldByID(ctx context.Context, id int) (form.FormField, error) {
	var row formFieldRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM form_field WHERE id = $1`, id)
	if err != nil {
		return form.FormField{}, trapNoRowsErr(err, form.ErrNotFound, "getting form field")
	}
	return row.field()
}

func (repo *formFieldRepository) UpdateFormField(ctx context.Context, fld form.FormField) (form.FormField, error) {
	row, err := newFormFieldRow(fld)
	if err != nil {
		return form.FormField{}, err
	}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE form_field
		 SET name = $2, label = $3, type = $4, required = $5, section = $6, "order" = $7, active = $8, options = $9
		 WHERE id = $1`,
		row.ID, row.Name, row.Label, row.Type, row.Required, row.Section, row.Order, row.Active, row.Options,
	)
	if err != nil {
		return form.FormField{}, errors.Wrap(err, "updating form field")
	}
	if n, err := res.RowsAffected(); err != nil {
		return form.FormField{}, errors.Wrap(err, "updating form field")
	} else if n == 0 {
		return form.FormField{}, form.ErrNotFound
	}
	return row.field()
}

func (repo *formFieldRepository) DeleteFormField(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM form_field WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting form field")
	}
	return nil
}

func (repo *formFieldRepository) SetFormFieldOrders(ctx context.Context, ids []int) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "reordering form fields")
	}
	defer func() { _ = tx.Rollback() }()

	for i, id := range ids {
		res, err := tx.ExecContext(ctx, `UPDATE form_field SET "order" = $1 WHERE id = $2`, i+1, id)
		if err != nil {
			return errors.Wrap(err, "reordering form fields")
		}
		if n, err := res.RowsAffected(); err != nil {
			return errors.Wrap(err, "reordering form fields")
		} else if n == 0 {
			return form.ErrNotFound
		}
	}
	return errors.Wrap(tx.Commit(), "reordering form fields")
}
