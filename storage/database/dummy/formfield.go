package dummydb

import (
	"context"

	"github.com/easymatricula/matricula/core/form"
)

type formFieldRepository struct {
	db *formFieldTable
}

var _ form.FieldRepository = (*formFieldRepository)(nil) // interface compliance check

func NewFormFieldRepository(db *DB) form.FieldRepository {
	return &formFieldRepository{db: db.formFields}
}

func (repo *formFieldRepository) query() []form.FormField {
	flds := make([]form.FormField, 0, len(repo.db.rows))
	for _, fld := range repo.db.rows {
		flds = append(flds, *fld)
	}
	return flds
}

func (repo *formFieldRepository) CheckFieldNameUniqueness(_ context.Context, name string, excluded ...form.FormField) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, fld := range repo.db.rows {
		if fld.Name == name && !fieldExcluded(*fld, excluded) {
			return form.ErrNameExists
		}
	}
	return nil
}

func (repo *formFieldRepository) CreateFormField(_ context.Context, fld form.FormField) (form.FormField, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	fld.ID = repo.db.seq
	repo.db.rows[fld.ID] = &fld
	return fld, nil
}

func (repo *formFieldRepository) QueryAllFormFields(_ context.Context) ([]form.FormField, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *formFieldRepository) GetFormFieldByID(_ context.Context, id int) (form.FormField, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if fld, ok := repo.db.rows[id]; ok {
		return *fld, nil
	}
	return form.FormField{}, form.ErrNotFound
}

func (repo *formFieldRepository) UpdateFormField(_ context.Context, fld form.FormField) (form.FormField, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.rows[fld.ID]; !ok {
		return form.FormField{}, form.ErrNotFound
	}
	repo.db.rows[fld.ID] = &fld
	return fld, nil
}

func (repo *formFieldRepository) DeleteFormField(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.rows, id)
	return nil
}

func (repo *formFieldRepository) SetFormFieldOrders(_ context.Context, ids []int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	// all-or-nothing: verify before assigning
	for _, id := range ids {
		if _, ok := repo.db.rows[id]; !ok {
			return form.ErrNotFound
		}
	}
	for i, id := range ids {
		repo.db.rows[id].Order = i + 1
	}
	return nil
}

func fieldExcluded(fld form.FormField, excluded []form.FormField) bool {
	for _, ex := range excluded {
		if ex.ID == fld.ID {
			return true
		}
	}
	return false
}
