package course

import (
	"time"

	"github.com/easymatricula/matricula/core"
)

// Course is one offering students can enroll in; its Shifts and Modalities
// feed the option lists of the course-section form fields.
type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Duration    int       `json:"duration"` // months
	Coordinator string    `json:"coordinator,omitempty"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// Shift is a class-time window offered for one course.
type Shift struct {
	ID        int    `json:"id"`
	CourseID  int    `json:"course_id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Weekdays  string `json:"weekdays"`
	Active    bool   `json:"active"`
}

// Modality is a delivery mode offered for one course.
type Modality struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"course_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

type NewCourse struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	Coordinator string  `json:"coordinator"`
	Price       float64 `json:"price" validate:"min=0"`
	Active      *bool   `json:"active"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Code = core.CleanString(nc.Code)
	nc.Description = core.CleanString(nc.Description)
	nc.Coordinator = core.CleanString(nc.Coordinator)
	return core.Validate.Struct(nc)
}

type UpdateCourse struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration" validate:"omitempty,min=1"`
	Coordinator *string  `json:"coordinator"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Active      *bool    `json:"active"`
}

func (uc *UpdateCourse) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.Code = core.CleanString(uc.Code)
	return core.Validate.Struct(uc)
}

type NewShift struct {
	CourseID  int    `json:"course_id" validate:"required,min=1"`
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Weekdays  string `json:"weekdays" validate:"required"`
	Active    *bool  `json:"active"`
}

func (ns *NewShift) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	return core.Validate.Struct(ns)
}

type UpdateShift struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Weekdays  string `json:"weekdays"`
	Active    *bool  `json:"active"`
}

func (us *UpdateShift) Validate() error {
	us.Name = core.CleanString(us.Name)
	return core.Validate.Struct(us)
}

type NewModality struct {
	CourseID    int    `json:"course_id" validate:"required,min=1"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (nm *NewModality) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	nm.Description = core.CleanString(nm.Description)
	return core.Validate.Struct(nm)
}

type UpdateModality struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (um *UpdateModality) Validate() error {
	um.Name = core.CleanString(um.Name)
	return core.Validate.Struct(um)
}
