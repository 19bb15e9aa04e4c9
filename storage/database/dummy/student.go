package dummydb

import (
	"context"
	"sort"

	"github.com/easymatricula/matricula/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.students}
}

// cloneStudent copies the record with a private Data map so the stored map is
// never shared with repo callers.
func cloneStudent(std student.Student) student.Student {
	data := make(map[string]string, len(std.Data))
	for key, val := range std.Data {
		data[key] = val
	}
	std.Data = data
	return std
}

func (repo *studentRepository) CreateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	std.ID = repo.db.seq
	stored := cloneStudent(std)
	repo.db.rows[std.ID] = &stored
	return cloneStudent(stored), nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id int) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if std, ok := repo.db.rows[id]; ok {
		return cloneStudent(*std), nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	stds := make([]student.Student, 0, len(repo.db.rows))
	for _, std := range repo.db.rows {
		stds = append(stds, cloneStudent(*std))
	}
	sort.Slice(stds, func(i, j int) bool { return stds[i].ID < stds[j].ID })
	return stds, nil
}

func (repo *studentRepository) UpdateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.rows[std.ID]; !ok {
		return student.Student{}, student.ErrNotFound
	}
	stored := cloneStudent(std)
	repo.db.rows[std.ID] = &stored
	return cloneStudent(stored), nil
}
