package form

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/easymatricula/matricula/core"
)

var (
	// errors
	ErrNotFound          = errors.New("definition not found")
	ErrNameExists        = errors.New("a definition with this name already exists")
	errOptionsNotAllowed = errors.New("options are only allowed on select and radio fields")
	errBadIndex          = errors.New("index out of range")
	errIncompleteOrder   = errors.New("id list must cover the whole collection")
)

type (
	// FieldRepository stores FormField definitions. Implementations assign
	// sequential ids on create and never reuse them.
	FieldRepository interface {
		CheckFieldNameUniqueness(ctx context.Context, name string, excluded ...FormField) error
		CreateFormField(ctx context.Context, fld FormField) (FormField, error)
		QueryAllFormFields(ctx context.Context) ([]FormField, error)
		GetFormFieldByID(ctx context.Context, id int) (FormField, error)
		UpdateFormField(ctx context.Context, fld FormField) (FormField, error)
		// DeleteFormField is a silent success when id is absent.
		DeleteFormField(ctx context.Context, id int) error
		// SetFormFieldOrders atomically assigns order = index+1 for each id.
		SetFormFieldOrders(ctx context.Context, ids []int) error
	}

	// RequirementRepository stores DocumentRequirement definitions.
	RequirementRepository interface {
		CheckRequirementNameUniqueness(ctx context.Context, name string, excluded ...DocumentRequirement) error
		CreateRequirement(ctx context.Context, req DocumentRequirement) (DocumentRequirement, error)
		QueryAllRequirements(ctx context.Context) ([]DocumentRequirement, error)
		GetRequirementByID(ctx context.Context, id int) (DocumentRequirement, error)
		UpdateRequirement(ctx context.Context, req DocumentRequirement) (DocumentRequirement, error)
		DeleteRequirement(ctx context.Context, id int) error
		SetRequirementOrders(ctx context.Context, ids []int) error
	}

	// Service is the form configuration engine: it owns both definition
	// collections and produces the read views the renderer consumes.
	Service struct {
		fields FieldRepository
		reqs   RequirementRepository
	}
)

func NewService(fields FieldRepository, reqs RequirementRepository) *Service {
	return &Service{fields: fields, reqs: reqs}
}

func (svc *Service) checkFieldNameUniqueness(name string, excluded ...FormField) error {
	if err := svc.fields.CheckFieldNameUniqueness(context.Background(), name, excluded...); err != nil {
		if err == ErrNameExists {
			return core.NewValidationError(err, core.FieldError{Field: "name", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) checkRequirementNameUniqueness(name string, excluded ...DocumentRequirement) error {
	if err := svc.reqs.CheckRequirementNameUniqueness(context.Background(), name, excluded...); err != nil {
		if err == ErrNameExists {
			return core.NewValidationError(err, core.FieldError{Field: "name", Error: err.Error()})
		}
		return err
	}
	return nil
}

// sortFields orders by (order, id) ascending; duplicate orders can occur
// transiently when two creates default to max+1 from a stale snapshot, so id
// breaks ties deterministically.
func sortFields(flds []FormField) {
	sort.Slice(flds, func(i, j int) bool {
		if flds[i].Order != flds[j].Order {
			return flds[i].Order < flds[j].Order
		}
		return flds[i].ID < flds[j].ID
	})
}

func sortRequirements(reqs []DocumentRequirement) {
	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].Order != reqs[j].Order {
			return reqs[i].Order < reqs[j].Order
		}
		return reqs[i].ID < reqs[j].ID
	})
}

// Form fields

func (svc *Service) CreateFormField(ctx context.Context, nf NewFormField) (FormField, error) {
	fld := nf.field()
	if fld.Order == 0 {
		max, err := svc.maxFieldOrder(ctx, fld.Section)
		if err != nil {
			return FormField{}, err
		}
		fld.Order = max + 1
	}
	return svc.fields.CreateFormField(ctx, fld)
}

func (svc *Service) maxFieldOrder(ctx context.Context, section string) (int, error) {
	flds, err := svc.fields.QueryAllFormFields(ctx)
	if err != nil {
		return 0, err
	}
	var max int
	for _, fld := range flds {
		if fld.Section == section && fld.Order > max {
			max = fld.Order
		}
	}
	return max, nil
}

func (svc *Service) GetFormField(ctx context.Context, id int) (FormField, error) {
	return svc.fields.GetFormFieldByID(ctx, id)
}

// QueryAllFormFields returns every definition, active or not, sorted by (order, id).
func (svc *Service) QueryAllFormFields(ctx context.Context) ([]FormField, error) {
	flds, err := svc.fields.QueryAllFormFields(ctx)
	if err != nil {
		return nil, err
	}
	sortFields(flds)
	return flds, nil
}

// FieldsForSection returns every definition of one section, active or not,
// sorted by (order, id). This is the list the admin editor manipulates.
func (svc *Service) FieldsForSection(ctx context.Context, section string) ([]FormField, error) {
	flds, err := svc.fields.QueryAllFormFields(ctx)
	if err != nil {
		return nil, err
	}
	keep := flds[:0]
	for _, fld := range flds {
		if fld.Section == section {
			keep = append(keep, fld)
		}
	}
	sortFields(keep)
	return keep, nil
}

// ActiveFields returns every active definition across all sections, sorted by
// (order, id).
func (svc *Service) ActiveFields(ctx context.Context) ([]FormField, error) {
	flds, err := svc.QueryAllFormFields(ctx)
	if err != nil {
		return nil, err
	}
	keep := flds[:0]
	for _, fld := range flds {
		if fld.Active {
			keep = append(keep, fld)
		}
	}
	return keep, nil
}

// ActiveFieldsForSection is the renderer-facing view: active fields of one
// section sorted by (order, id). Recomputed on every call.
func (svc *Service) ActiveFieldsForSection(ctx context.Context, section string) ([]FormField, error) {
	flds, err := svc.FieldsForSection(ctx, section)
	if err != nil {
		return nil, err
	}
	keep := flds[:0]
	for _, fld := range flds {
		if fld.Active {
			keep = append(keep, fld)
		}
	}
	return keep, nil
}

func (svc *Service) UpdateFormField(ctx context.Context, id int, uf UpdateFormField) (FormField, error) {
	orig, err := svc.fields.GetFormFieldByID(ctx, id)
	if err != nil {
		return FormField{}, err
	}
	if err := uf.Validate(orig, svc); err != nil {
		return FormField{}, err
	}
	return svc.fields.UpdateFormField(ctx, uf.merge(orig))
}

// DeleteFormField removes the definition irreversibly, with no cascade:
// previously submitted student records keep their values since they are keyed
// by field name. Deleting an absent id is a silent success.
func (svc *Service) DeleteFormField(ctx context.Context, id int) error {
	return svc.fields.DeleteFormField(ctx, id)
}

// ReorderFormFields persists the given full ordered id list of one section as
// dense 1..N orders in a single atomic storage operation.
func (svc *Service) ReorderFormFields(ctx context.Context, section string, ids []int) ([]FormField, error) {
	current, err := svc.FieldsForSection(ctx, section)
	if err != nil {
		return nil, err
	}
	if err := checkCoversCollection(ids, fieldIDs(current)); err != nil {
		return nil, err
	}
	if err := svc.fields.SetFormFieldOrders(ctx, ids); err != nil {
		return nil, err
	}
	return svc.FieldsForSection(ctx, section)
}

// MoveFormField translates a reposition gesture into persisted orders: it
// removes the item at srcIdx from the section's current ordered list,
// reinserts it at dstIdx and reassigns order = position+1 to every item.
func (svc *Service) MoveFormField(ctx context.Context, section string, srcIdx, dstIdx int) ([]FormField, error) {
	current, err := svc.FieldsForSection(ctx, section)
	if err != nil {
		return nil, err
	}
	ids, err := splice(fieldIDs(current), srcIdx, dstIdx)
	if err != nil {
		return nil, err
	}
	if err := svc.fields.SetFormFieldOrders(ctx, ids); err != nil {
		return nil, err
	}
	return svc.FieldsForSection(ctx, section)
}

// Document requirements

func (svc *Service) CreateRequirement(ctx context.Context, nr NewDocumentRequirement) (DocumentRequirement, error) {
	req := nr.requirement()
	if req.Order == 0 {
		reqs, err := svc.reqs.QueryAllRequirements(ctx)
		if err != nil {
			return DocumentRequirement{}, err
		}
		for _, r := range reqs {
			if r.Order >= req.Order {
				req.Order = r.Order + 1
			}
		}
		if req.Order == 0 {
			req.Order = 1
		}
	}
	return svc.reqs.CreateRequirement(ctx, req)
}

func (svc *Service) GetRequirement(ctx context.Context, id int) (DocumentRequirement, error) {
	return svc.reqs.GetRequirementByID(ctx, id)
}

// QueryAllRequirements returns every definition, active or not, sorted by (order, id).
func (svc *Service) QueryAllRequirements(ctx context.Context) ([]DocumentRequirement, error) {
	reqs, err := svc.reqs.QueryAllRequirements(ctx)
	if err != nil {
		return nil, err
	}
	sortRequirements(reqs)
	return reqs, nil
}

// ActiveRequirements is the renderer-facing upload checklist: active
// requirements sorted by (order, id).
func (svc *Service) ActiveRequirements(ctx context.Context) ([]DocumentRequirement, error) {
	reqs, err := svc.QueryAllRequirements(ctx)
	if err != nil {
		return nil, err
	}
	keep := reqs[:0]
	for _, req := range reqs {
		if req.Active {
			keep = append(keep, req)
		}
	}
	return keep, nil
}

func (svc *Service) UpdateRequirement(ctx context.Context, id int, ur UpdateDocumentRequirement) (DocumentRequirement, error) {
	orig, err := svc.reqs.GetRequirementByID(ctx, id)
	if err != nil {
		return DocumentRequirement{}, err
	}
	if err := ur.Validate(orig, svc); err != nil {
		return DocumentRequirement{}, err
	}
	return svc.reqs.UpdateRequirement(ctx, ur.merge(orig))
}

func (svc *Service) DeleteRequirement(ctx context.Context, id int) error {
	return svc.reqs.DeleteRequirement(ctx, id)
}

func (svc *Service) ReorderRequirements(ctx context.Context, ids []int) ([]DocumentRequirement, error) {
	current, err := svc.QueryAllRequirements(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkCoversCollection(ids, requirementIDs(current)); err != nil {
		return nil, err
	}
	if err := svc.reqs.SetRequirementOrders(ctx, ids); err != nil {
		return nil, err
	}
	return svc.QueryAllRequirements(ctx)
}

func (svc *Service) MoveRequirement(ctx context.Context, srcIdx, dstIdx int) ([]DocumentRequirement, error) {
	current, err := svc.QueryAllRequirements(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := splice(requirementIDs(current), srcIdx, dstIdx)
	if err != nil {
		return nil, err
	}
	if err := svc.reqs.SetRequirementOrders(ctx, ids); err != nil {
		return nil, err
	}
	return svc.QueryAllRequirements(ctx)
}

// Renderer-facing contract

// MissingRequired returns the names of the section's active required fields
// whose value is absent or blank in the in-progress submission. The engine is
// stateless with respect to any particular submission; callers check the
// result before advancing past the section.
func (svc *Service) MissingRequired(ctx context.Context, section string, values map[string]string) ([]string, error) {
	flds, err := svc.ActiveFieldsForSection(ctx, section)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, fld := range flds {
		if fld.Required && strings.TrimSpace(values[fld.Name]) == "" {
			missing = append(missing, fld.Name)
		}
	}
	return missing, nil
}

// Seeding

// IsEmpty reports whether either definition collection has no records; the
// bootstrap uses it to decide whether to seed defaults exactly once.
func (svc *Service) IsEmpty(ctx context.Context) (bool, error) {
	flds, err := svc.fields.QueryAllFormFields(ctx)
	if err != nil {
		return false, err
	}
	reqs, err := svc.reqs.QueryAllRequirements(ctx)
	if err != nil {
		return false, err
	}
	return len(flds) == 0 || len(reqs) == 0, nil
}

// SeedDefaults populates each empty collection with the default definitions.
// A non-empty collection is left untouched, so calling it twice is a no-op.
func (svc *Service) SeedDefaults(ctx context.Context) error {
	flds, err := svc.fields.QueryAllFormFields(ctx)
	if err != nil {
		return err
	}
	if len(flds) == 0 {
		for _, fld := range defaultFormFields() {
			if _, err := svc.fields.CreateFormField(ctx, fld); err != nil {
				return err
			}
		}
	}

	reqs, err := svc.reqs.QueryAllRequirements(ctx)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		for _, req := range defaultRequirements() {
			if _, err := svc.reqs.CreateRequirement(ctx, req); err != nil {
				return err
			}
		}
	}
	return nil
}

// helpers

func fieldIDs(flds []FormField) []int {
	ids := make([]int, 0, len(flds))
	for _, fld := range flds {
		ids = append(ids, fld.ID)
	}
	return ids
}

func requirementIDs(reqs []DocumentRequirement) []int {
	ids := make([]int, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}
	return ids
}

// splice removes ids[srcIdx] and reinserts it at dstIdx.
func splice(ids []int, srcIdx, dstIdx int) ([]int, error) {
	n := len(ids)
	if srcIdx < 0 || srcIdx >= n || dstIdx < 0 || dstIdx >= n {
		return nil, core.NewValidationError(errBadIndex)
	}
	moved := ids[srcIdx]
	rest := append(append([]int{}, ids[:srcIdx]...), ids[srcIdx+1:]...)
	out := append(append(append([]int{}, rest[:dstIdx]...), moved), rest[dstIdx:]...)
	return out, nil
}

// checkCoversCollection verifies ids is a permutation of want.
func checkCoversCollection(ids, want []int) error {
	if len(ids) != len(want) {
		return core.NewValidationError(errIncompleteOrder, core.FieldError{Field: "ids", Error: errIncompleteOrder.Error()})
	}
	seen := make(map[int]bool, len(want))
	for _, id := range want {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			return ErrNotFound
		}
		delete(seen, id)
	}
	if len(seen) != 0 {
		return core.NewValidationError(errIncompleteOrder, core.FieldError{Field: "ids", Error: errIncompleteOrder.Error()})
	}
	return nil
}
