package student

import (
	"context"
	"time"

	"github.com/easymatricula/matricula/core"
	"github.com/easymatricula/matricula/core/form"
)

// Registration statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Student is one enrollment submission. Data holds the submitted values keyed
// by form-field name; there is no foreign key to the field definitions, so a
// deleted definition leaves past submissions untouched.
type Student struct {
	ID               int               `json:"id"`
	Status           string            `json:"status"`
	RegistrationDate time.Time         `json:"registration_date"` // UTC
	Data             map[string]string `json:"data"`
}

// FullName is the submitted display name, if any.
func (s Student) FullName() string { return s.Data["fullName"] }

// Email is the submitted contact email, if any.
func (s Student) Email() string { return s.Data["email"] }

// NewStudent contains a submission received from the enrollment wizard.
type NewStudent struct {
	Data map[string]string `json:"data" validate:"required"`
}

// Validate checks the submission against the current form configuration:
// every active required field of every section must carry a non-blank value.
func (ns *NewStudent) Validate(ctx context.Context, engine *form.Service) error {
	for key, val := range ns.Data {
		ns.Data[key] = core.CleanString(val)
	}
	if err := core.Validate.Struct(ns); err != nil {
		return err
	}

	var fldErrs []core.FieldError
	for _, section := range form.Sections {
		missing, err := engine.MissingRequired(ctx, section, ns.Data)
		if err != nil {
			return err
		}
		for _, name := range missing {
			fldErrs = append(fldErrs, core.FieldError{Field: name, Error: "this field is required"})
		}
	}
	if len(fldErrs) > 0 {
		return core.NewValidationError(nil, fldErrs...)
	}
	return nil
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Data entries are merged key by key.
type UpdateStudent struct {
	Status string            `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Data   map[string]string `json:"data"`
}

func (us *UpdateStudent) Validate() error {
	for key, val := range us.Data {
		us.Data[key] = core.CleanString(val)
	}
	return core.Validate.Struct(us)
}
