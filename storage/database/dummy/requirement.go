package dummydb

import (
	"context"

	"github.com/easymatricula/matricula/core/form"
)

type requirementRepository struct {
	db *requirementTable
}

var _ form.RequirementRepository = (*requirementRepository)(nil) // interface compliance check

func NewRequirementRepository(db *DB) form.RequirementRepository {
	return &requirementRepository{db: db.requirements}
}

func (repo *requirementRepository) query() []form.DocumentRequirement {
	reqs := make([]form.DocumentRequirement, 0, len(repo.db.rows))
	for _, req := range repo.db.rows {
		reqs = append(reqs, *req)
	}
	return reqs
}

func (repo *requirementRepository) CheckRequirementNameUniqueness(_ context.Context, name string, excluded ...form.DocumentRequirement) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, req := range repo.db.rows {
		if req.Name == name && !requirementExcluded(*req, excluded) {
			return form.ErrNameExists
		}
	}
	return nil
}

func (repo *requirementRepository) CreateRequirement(_ context.Context, req form.DocumentRequirement) (form.DocumentRequirement, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	req.ID = repo.db.seq
	repo.db.rows[req.ID] = &req
	return req, nil
}

func (repo *requirementRepository) QueryAllRequirements(_ context.Context) ([]form.DocumentRequirement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *requirementRepository) GetRequirementByID(_ context.Context, id int) (form.DocumentRequirement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if req, ok := repo.db.rows[id]; ok {
		return *req, nil
	}
	return form.DocumentRequirement{}, form.ErrNotFound
}

func (repo *requirementRepository) UpdateRequirement(_ context.Context, req form.DocumentRequirement) (form.DocumentRequirement, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.rows[req.ID]; !ok {
		return form.DocumentRequirement{}, form.ErrNotFound
	}
	repo.db.rows[req.ID] = &req
	return req, nil
}

func (repo *requirementRepository) DeleteRequirement(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.rows, id)
	return nil
}

func (repo *requirementRepository) SetRequirementOrders(_ context.Context, ids []int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

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

func requirementExcluded(req form.DocumentRequirement, excluded []form.DocumentRequirement) bool {
	for _, ex := range excluded {
		if ex.ID == req.ID {
			return true
		}
	}
	return false
}
