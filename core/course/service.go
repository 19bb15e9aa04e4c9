package course

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		GetCourseByID(ctx context.Context, id int) (Course, error)
		QueryAllCourses(ctx context.Context) ([]Course, error)
		UpdateCourse(ctx context.Context, crs Course) (Course, error)
		DeleteCourse(ctx context.Context, id int) error

		CreateShift(ctx context.Context, sh Shift) (Shift, error)
		GetShiftByID(ctx context.Context, id int) (Shift, error)
		QueryShiftsByCourseID(ctx context.Context, courseID int) ([]Shift, error)
		UpdateShift(ctx context.Context, sh Shift) (Shift, error)
		DeleteShift(ctx context.Context, id int) error
		DeleteShiftsByCourseID(ctx context.Context, courseID int) error

		CreateModality(ctx context.Context, mod Modality) (Modality, error)
		GetModalityByID(ctx context.Context, id int) (Modality, error)
		QueryModalitiesByCourseID(ctx context.Context, courseID int) ([]Modality, error)
		UpdateModality(ctx context.Context, mod Modality) (Modality, error)
		DeleteModality(ctx context.Context, id int) error
		DeleteModalitiesByCourseID(ctx context.Context, courseID int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Courses

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	crs := Course{
		Name:        nc.Name,
		Code:        nc.Code,
		Description: nc.Description,
		Duration:    nc.Duration,
		Coordinator: nc.Coordinator,
		Price:       nc.Price,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	if nc.Active != nil {
		crs.Active = *nc.Active
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateCourse) (Course, error) {
	crs, err := svc.repo.GetCourseByID(ctx, id)
	if err != nil {
		return Course{}, err
	}
	if uc.Name != "" {
		crs.Name = uc.Name
	}
	if uc.Code != "" {
		crs.Code = uc.Code
	}
	if uc.Description != nil {
		crs.Description = *uc.Description
	}
	if uc.Duration != nil {
		crs.Duration = *uc.Duration
	}
	if uc.Coordinator != nil {
		crs.Coordinator = *uc.Coordinator
	}
	if uc.Price != nil {
		crs.Price = *uc.Price
	}
	if uc.Active != nil {
		crs.Active = *uc.Active
	}
	return svc.repo.UpdateCourse(ctx, crs)
}

// Delete removes the course and cascades to its shifts and modalities.
func (svc *Service) Delete(ctx context.Context, id int) error {
	if err := svc.repo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	if err := svc.repo.DeleteShiftsByCourseID(ctx, id); err != nil {
		return err
	}
	return svc.repo.DeleteModalitiesByCourseID(ctx, id)
}

// Shifts

func (svc *Service) CreateShift(ctx context.Context, ns NewShift) (Shift, error) {
	if _, err := svc.repo.GetCourseByID(ctx, ns.CourseID); err != nil {
		return Shift{}, err
	}
	sh := Shift{
		CourseID:  ns.CourseID,
		Name:      ns.Name,
		StartTime: ns.StartTime,
		EndTime:   ns.EndTime,
		Weekdays:  ns.Weekdays,
		Active:    true,
	}
	if ns.Active != nil {
		sh.Active = *ns.Active
	}
	return svc.repo.CreateShift(ctx, sh)
}

func (svc *Service) QueryShifts(ctx context.Context, courseID int) ([]Shift, error) {
	return svc.repo.QueryShiftsByCourseID(ctx, courseID)
}

func (svc *Service) UpdateShift(ctx context.Context, id int, us UpdateShift) (Shift, error) {
	sh, err := svc.repo.GetShiftByID(ctx, id)
	if err != nil {
		return Shift{}, err
	}
	if us.Name != "" {
		sh.Name = us.Name
	}
	if us.StartTime != "" {
		sh.StartTime = us.StartTime
	}
	if us.EndTime != "" {
		sh.EndTime = us.EndTime
	}
	if us.Weekdays != "" {
		sh.Weekdays = us.Weekdays
	}
	if us.Active != nil {
		sh.Active = *us.Active
	}
	return svc.repo.UpdateShift(ctx, sh)
}

func (svc *Service) DeleteShift(ctx context.Context, id int) error {
	return svc.repo.DeleteShift(ctx, id)
}

// Modalities

func (svc *Service) CreateModality(ctx context.Context, nm NewModality) (Modality, error) {
	if _, err := svc.repo.GetCourseByID(ctx, nm.CourseID); err != nil {
		return Modality{}, err
	}
	mod := Modality{
		CourseID:    nm.CourseID,
		Name:        nm.Name,
		Description: nm.Description,
		Active:      true,
	}
	if nm.Active != nil {
		mod.Active = *nm.Active
	}
	return svc.repo.CreateModality(ctx, mod)
}

func (svc *Service) QueryModalities(ctx context.Context, courseID int) ([]Modality, error) {
	return svc.repo.QueryModalitiesByCourseID(ctx, courseID)
}

func (svc *Service) UpdateModality(ctx context.Context, id int, um UpdateModality) (Modality, error) {
	mod, err := svc.repo.GetModalityByID(ctx, id)
	if err != nil {
		return Modality{}, err
	}
	if um.Name != "" {
		mod.Name = um.Name
	}
	if um.Description != nil {
		mod.Description = *um.Description
	}
	if um.Active != nil {
		mod.Active = *um.Active
	}
	return svc.repo.UpdateModality(ctx, mod)
}

func (svc *Service) DeleteModality(ctx context.Context, id int) error {
	return svc.repo.DeleteModality(ctx, id)
}

// Seeding

// IsEmpty reports whether no courses exist yet.
func (svc *Service) IsEmpty(ctx context.Context) (bool, error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return false, err
	}
	return len(courses) == 0, nil
}

// SeedDefaults populates the default course catalog with its shifts and
// modalities. A no-op when courses already exist.
func (svc *Service) SeedDefaults(ctx context.Context) error {
	empty, err := svc.IsEmpty(ctx)
	if err != nil || !empty {
		return err
	}
	for _, seed := range defaultCourses() {
		crs, err := svc.repo.CreateCourse(ctx, seed)
		if err != nil {
			return err
		}
		for _, sh := range defaultShifts(crs.ID) {
			if _, err := svc.repo.CreateShift(ctx, sh); err != nil {
				return err
			}
		}
		for _, mod := range defaultModalities(crs.ID) {
			if _, err := svc.repo.CreateModality(ctx, mod); err != nil {
				return err
			}
		}
	}
	return nil
}
