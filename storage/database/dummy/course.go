package dummydb

import (
	"context"
	"sort"

	"github.com/easymatricula/matricula/core/course"
)

type courseRepository struct {
	courses    *courseTable
	shifts     *shiftTable
	modalities *modalityTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{
		courses:    db.courses,
		shifts:     db.shifts,
		modalities: db.modalities,
	}
}

// Courses

func (repo *courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.courses.Lock()
	defer repo.courses.Unlock()

	repo.courses.seq++
	crs.ID = repo.courses.seq
	repo.courses.rows[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) GetCourseByID(_ context.Context, id int) (course.Course, error) {
	repo.courses.RLock()
	defer repo.courses.RUnlock()

	if crs, ok := repo.courses.rows[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) QueryAllCourses(_ context.Context) ([]course.Course, error) {
	repo.courses.RLock()
	defer repo.courses.RUnlock()

	crss := make([]course.Course, 0, len(repo.courses.rows))
	for _, crs := range repo.courses.rows {
		crss = append(crss, *crs)
	}
	sort.Slice(crss, func(i, j int) bool { return crss[i].ID < crss[j].ID })
	return crss, nil
}

func (repo *courseRepository) UpdateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.courses.Lock()
	defer repo.courses.Unlock()

	if _, ok := repo.courses.rows[crs.ID]; !ok {
		return course.Course{}, course.ErrNotFound
	}
	repo.courses.rows[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) DeleteCourse(_ context.Context, id int) error {
	repo.courses.Lock()
	defer repo.courses.Unlock()
	delete(repo.courses.rows, id)
	return nil
}

// Shifts

func (repo *courseRepository) CreateShift(_ context.Context, sh course.Shift) (course.Shift, error) {
	repo.shifts.Lock()
	defer repo.shifts.Unlock()

	repo.shifts.seq++
	sh.ID = repo.shifts.seq
	repo.shifts.rows[sh.ID] = &sh
	return sh, nil
}

func (repo *courseRepository) GetShiftByID(_ context.Context, id int) (course.Shift, error) {
	repo.shifts.RLock()
	defer repo.shifts.RUnlock()

	if sh, ok := repo.shifts.rows[id]; ok {
		return *sh, nil
	}
	return course.Shift{}, course.ErrNotFound
}

func (repo *courseRepository) QueryShiftsByCourseID(_ context.Context, courseID int) ([]course.Shift, error) {
	repo.shifts.RLock()
	defer repo.shifts.RUnlock()

	shs := make([]course.Shift, 0)
	for _, sh := range repo.shifts.rows {
		if sh.CourseID == courseID {
			shs = append(shs, *sh)
		}
	}
	sort.Slice(shs, func(i, j int) bool { return shs[i].ID < shs[j].ID })
	return shs, nil
}

func (repo *courseRepository) UpdateShift(_ context.Context, sh course.Shift) (course.Shift, error) {
	repo.shifts.Lock()
	defer repo.shifts.Unlock()

	if _, ok := repo.shifts.rows[sh.ID]; !ok {
		return course.Shift{}, course.ErrNotFound
	}
	repo.shifts.rows[sh.ID] = &sh
	return sh, nil
}

func (repo *courseRepository) DeleteShift(_ context.Context, id int) error {
	repo.shifts.Lock()
	defer repo.shifts.Unlock()
	delete(repo.shifts.rows, id)
	return nil
}

func (repo *courseRepository) DeleteShiftsByCourseID(_ context.Context, courseID int) error {
	repo.shifts.Lock()
	defer repo.shifts.Unlock()

	for id, sh := range repo.shifts.rows {
		if sh.CourseID == courseID {
			delete(repo.shifts.rows, id)
		}
	}
	return nil
}

// Modalities

func (repo *courseRepository) CreateModality(_ context.Context, mod course.Modality) (course.Modality, error) {
	repo.modalities.Lock()
	defer repo.modalities.Unlock()

	repo.modalities.seq++
	mod.ID = repo.modalities.seq
	repo.modalities.rows[mod.ID] = &mod
	return mod, nil
}

func (repo *courseRepository) GetModalityByID(_ context.Context, id int) (course.Modality, error) {
	repo.modalities.RLock()
	defer repo.modalities.RUnlock()

	if mod, ok := repo.modalities.rows[id]; ok {
		return *mod, nil
	}
	return course.Modality{}, course.ErrNotFound
}

func (repo *courseRepository) QueryModalitiesByCourseID(_ context.Context, courseID int) ([]course.Modality, error) {
	repo.modalities.RLock()
	defer repo.modalities.RUnlock()

	mods := make([]course.Modality, 0)
	for _, mod := range repo.modalities.rows {
		if mod.CourseID == courseID {
			mods = append(mods, *mod)
		}
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i].ID < mods[j].ID })
	return mods, nil
}

func (repo *courseRepository) UpdateModality(_ context.Context, mod course.Modality) (course.Modality, error) {
	repo.modalities.Lock()
	defer repo.modalities.Unlock()

	if _, ok := repo.modalities.rows[mod.ID]; !ok {
		return course.Modality{}, course.ErrNotFound
	}
	repo.modalities.rows[mod.ID] = &mod
	return mod, nil
}

func (repo *courseRepository) DeleteModality(_ context.Context, id int) error {
	repo.modalities.Lock()
	defer repo.modalities.Unlock()
	delete(repo.modalities.rows, id)
	return nil
}

func (repo *courseRepository) DeleteModalitiesByCourseID(_ context.Context, courseID int) error {
	repo.modalities.Lock()
	defer repo.modalities.Unlock()

	for id, mod := range repo.modalities.rows {
		if mod.CourseID == courseID {
			delete(repo.modalities.rows, id)
		}
	}
	return nil
}
