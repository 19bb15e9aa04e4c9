package form

import (
	"github.com/easymatricula/matricula/core"
)

// Sections partition form fields into the ordered steps of the enrollment
// wizard. The documents step is driven by DocumentRequirement instead.
const (
	SectionPersonal = "personal"
	SectionContact  = "contact"
	SectionCourse   = "course"
)

var Sections = []string{SectionPersonal, SectionContact, SectionCourse}

// Field types. Select and radio fields render the Options catalog.
const (
	TypeText     = "text"
	TypeEmail    = "email"
	TypeTel      = "tel"
	TypeDate     = "date"
	TypeSelect   = "select"
	TypeRadio    = "radio"
	TypeTextarea = "textarea"
)

var FieldTypes = []string{TypeText, TypeEmail, TypeTel, TypeDate, TypeSelect, TypeRadio, TypeTextarea}

// FieldOption is one admin-configured choice of a select or radio field.
type FieldOption struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// FormField describes one input of the enrollment form; it is configuration
// authored by an admin, not a student's actual data. Student submissions are
// keyed by Name with no foreign key back to the definition.
type FormField struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Label    string        `json:"label"`
	Type     string        `json:"type"`
	Required bool          `json:"required"`
	Section  string        `json:"section"`
	Order    int           `json:"order"`
	Active   bool          `json:"active"`
	Options  []FieldOption `json:"options,omitempty"`
}

// TakesOptions reports whether the field type renders an option catalog.
func (f FormField) TakesOptions() bool {
	return f.Type == TypeSelect || f.Type == TypeRadio
}

// DocumentRequirement describes one entry of the document-upload checklist;
// the uploaded file itself is a separate Document entity keyed by Name.
type DocumentRequirement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}

// NewFormField contains information needed to create a new FormField.
type NewFormField struct {
	Name     string        `json:"name" validate:"required,fieldname"`
	Label    string        `json:"label" validate:"required"`
	Type     string        `json:"type" validate:"required,oneof=text email tel date select radio textarea"`
	Required bool          `json:"required"`
	Section  string        `json:"section" validate:"required,oneof=personal contact course"`
	Order    int           `json:"order" validate:"omitempty,min=1"`
	Active   *bool         `json:"active"`
	Options  []FieldOption `json:"options" validate:"omitempty,dive"`
}

func (nf *NewFormField) field() FormField {
	fld := FormField{
		Name:     nf.Name,
		Label:    nf.Label,
		Type:     nf.Type,
		Required: nf.Required,
		Section:  nf.Section,
		Order:    nf.Order,
		Active:   true,
		Options:  nf.Options,
	}
	if nf.Active != nil {
		fld.Active = *nf.Active
	}
	return fld
}

func (nf *NewFormField) Validate(svc *Service) error {
	nf.Name = core.CleanString(nf.Name)
	nf.Label = core.CleanString(nf.Label)

	if err := core.Validate.Struct(nf); err != nil {
		return err
	}
	if len(nf.Options) > 0 && !nf.field().TakesOptions() {
		return core.NewValidationError(nil, core.FieldError{Field: "options", Error: errOptionsNotAllowed.Error()})
	}
	return svc.checkFieldNameUniqueness(nf.Name)
}

// UpdateFormField defines what information may be provided to modify an
// existing FormField. Omitted fields keep their current value; ID is immutable.
type UpdateFormField struct {
	Name     string        `json:"name" validate:"omitempty,fieldname"`
	Label    string        `json:"label"`
	Type     string        `json:"type" validate:"omitempty,oneof=text email tel date select radio textarea"`
	Required *bool         `json:"required"`
	Section  string        `json:"section" validate:"omitempty,oneof=personal contact course"`
	Order    *int          `json:"order" validate:"omitempty,min=1"`
	Active   *bool         `json:"active"`
	Options  []FieldOption `json:"options" validate:"omitempty,dive"`
}

// merge applies the set fields of uf onto orig.
func (uf *UpdateFormField) merge(orig FormField) FormField {
	fld := orig
	if uf.Name != "" {
		fld.Name = uf.Name
	}
	if uf.Label != "" {
		fld.Label = uf.Label
	}
	if uf.Type != "" {
		fld.Type = uf.Type
	}
	if uf.Required != nil {
		fld.Required = *uf.Required
	}
	if uf.Section != "" {
		fld.Section = uf.Section
	}
	if uf.Order != nil {
		fld.Order = *uf.Order
	}
	if uf.Active != nil {
		fld.Active = *uf.Active
	}
	if uf.Options != nil {
		fld.Options = uf.Options
	}
	return fld
}

func (uf *UpdateFormField) Validate(orig FormField, svc *Service) error {
	uf.Name = core.CleanString(uf.Name)
	uf.Label = core.CleanString(uf.Label)

	if err := core.Validate.Struct(uf); err != nil {
		return err
	}
	merged := uf.merge(orig)
	if len(merged.Options) > 0 && !merged.TakesOptions() {
		return core.NewValidationError(nil, core.FieldError{Field: "options", Error: errOptionsNotAllowed.Error()})
	}
	if uf.Name != "" && uf.Name != orig.Name {
		return svc.checkFieldNameUniqueness(uf.Name, orig)
	}
	return nil
}

// NewDocumentRequirement contains information needed to create a new DocumentRequirement.
type NewDocumentRequirement struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Active      *bool  `json:"active"`
	Order       int    `json:"order" validate:"omitempty,min=1"`
}

func (nr *NewDocumentRequirement) requirement() DocumentRequirement {
	req := DocumentRequirement{
		Name:        nr.Name,
		Description: nr.Description,
		Required:    nr.Required,
		Active:      true,
		Order:       nr.Order,
	}
	if nr.Active != nil {
		req.Active = *nr.Active
	}
	return req
}

func (nr *NewDocumentRequirement) Validate(svc *Service) error {
	nr.Name = core.CleanString(nr.Name)
	nr.Description = core.CleanString(nr.Description)

	if err := core.Validate.Struct(nr); err != nil {
		return err
	}
	return svc.checkRequirementNameUniqueness(nr.Name)
}

// UpdateDocumentRequirement defines what information may be provided to modify
// an existing DocumentRequirement.
type UpdateDocumentRequirement struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Required    *bool   `json:"required"`
	Active      *bool   `json:"active"`
	Order       *int    `json:"order" validate:"omitempty,min=1"`
}

func (ur *UpdateDocumentRequirement) merge(orig DocumentRequirement) DocumentRequirement {
	req := orig
	if ur.Name != "" {
		req.Name = ur.Name
	}
	if ur.Description != nil {
		req.Description = *ur.Description
	}
	if ur.Required != nil {
		req.Required = *ur.Required
	}
	if ur.Active != nil {
		req.Active = *ur.Active
	}
	if ur.Order != nil {
		req.Order = *ur.Order
	}
	return req
}

func (ur *UpdateDocumentRequirement) Validate(orig DocumentRequirement, svc *Service) error {
	ur.Name = core.CleanString(ur.Name)

	if err := core.Validate.Struct(ur); err != nil {
		return err
	}
	if ur.Name != "" && ur.Name != orig.Name {
		return svc.checkRequirementNameUniqueness(ur.Name, orig)
	}
	return nil
}

// Reorder is the full ordered id list of one collection (or of one section of
// the form-field collection); applying it reassigns dense 1..N orders in a
// single storage operation.
type Reorder struct {
	IDs []int `json:"ids" validate:"required,min=1,unique"`
}

func (r *Reorder) Validate() error { return core.Validate.Struct(r) }

// Move is a drag-and-drop reposition gesture over the current ordered list.
type Move struct {
	Section     string `json:"section,omitempty" validate:"omitempty,oneof=personal contact course"`
	SourceIndex int    `json:"source_index" validate:"min=0"`
	DestIndex   int    `json:"destination_index" validate:"min=0"`
}

func (m *Move) Validate() error { return core.Validate.Struct(m) }
