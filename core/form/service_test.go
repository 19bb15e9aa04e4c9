package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymatricula/matricula/core"
	"github.com/easymatricula/matricula/core/form"
	dummydb "github.com/easymatricula/matricula/storage/database/dummy"
)

func setup(t *testing.T) *form.Service {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return form.NewService(dummydb.NewFormFieldRepository(db), dummydb.NewRequirementRepository(db))
}

func createField(t *testing.T, svc *form.Service, name, section string, order int) form.FormField {
	nf := form.NewFormField{
		Name:    name,
		Label:   name,
		Type:    form.TypeText,
		Section: section,
		Order:   order,
	}
	if err := nf.Validate(svc); err != nil {
		t.Fatalf("createField(%s) validate failed: %v", name, err)
	}
	fld, err := svc.CreateFormField(context.Background(), nf)
	if err != nil {
		t.Fatalf("createField(%s) failed: %v", name, err)
	}
	return fld
}

func createRequirement(t *testing.T, svc *form.Service, name string, order int) form.DocumentRequirement {
	nr := form.NewDocumentRequirement{Name: name, Order: order}
	if err := nr.Validate(svc); err != nil {
		t.Fatalf("createRequirement(%s) validate failed: %v", name, err)
	}
	req, err := svc.CreateRequirement(context.Background(), nr)
	if err != nil {
		t.Fatalf("createRequirement(%s) failed: %v", name, err)
	}
	return req
}

func fieldNames(flds []form.FormField) []string {
	names := make([]string, 0, len(flds))
	for _, fld := range flds {
		names = append(names, fld.Name)
	}
	return names
}

func fieldOrders(flds []form.FormField) []int {
	orders := make([]int, 0, len(flds))
	for _, fld := range flds {
		orders = append(orders, fld.Order)
	}
	return orders
}

func TestService_CreateFormField(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	fld := createField(t, svc, "fullName", form.SectionPersonal, 0)
	assert.Equal(t, 1, fld.ID)
	assert.Equal(t, 1, fld.Order, "first field of a section defaults to order 1")
	assert.True(t, fld.Active, "active defaults to true")

	got, err := svc.GetFormField(ctx, fld.ID)
	require.NoError(t, err)
	assert.Equal(t, fld, got)

	// order defaults to section max + 1, per section
	second := createField(t, svc, "birthDate", form.SectionPersonal, 0)
	assert.Equal(t, 2, second.Order)
	other := createField(t, svc, "email", form.SectionContact, 0)
	assert.Equal(t, 1, other.Order)
}

func TestService_CreateFormField_nameUniqueness(t *testing.T) {
	svc := setup(t)

	createField(t, svc, "fullName", form.SectionPersonal, 0)

	nf := form.NewFormField{
		Name:    "fullName",
		Label:   "Nome Completo",
		Type:    form.TypeText,
		Section: form.SectionContact,
	}
	err := nf.Validate(svc)
	require.Error(t, err)
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok, "expected a validation error, got %T", err)
	assert.Equal(t, "name", vErr.Fields[0].Field)
}

func TestService_CreateFormField_optionsOnlyOnChoiceFields(t *testing.T) {
	svc := setup(t)

	nf := form.NewFormField{
		Name:    "gender",
		Label:   "Gênero",
		Type:    form.TypeText,
		Section: form.SectionPersonal,
		Options: []form.FieldOption{{Value: "f", Label: "Feminino"}},
	}
	err := nf.Validate(svc)
	require.Error(t, err)

	nf.Type = form.TypeSelect
	assert.NoError(t, nf.Validate(svc))
}

func TestService_FieldsForSection_ordering(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	// created out of order on purpose
	createField(t, svc, "c", form.SectionPersonal, 3)
	createField(t, svc, "a", form.SectionPersonal, 1)
	createField(t, svc, "b", form.SectionPersonal, 2)
	createField(t, svc, "other", form.SectionContact, 1)

	flds, err := svc.FieldsForSection(ctx, form.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fieldNames(flds))
}

func TestService_FieldsForSection_idBreaksOrderTies(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	first := createField(t, svc, "first", form.SectionPersonal, 1)
	second := createField(t, svc, "second", form.SectionPersonal, 1)
	require.Less(t, first.ID, second.ID)

	flds, err := svc.FieldsForSection(ctx, form.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, fieldNames(flds), "equal orders resolve by creation id")
}

func TestService_ActiveFieldsForSection(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	createField(t, svc, "visible", form.SectionPersonal, 1)
	hidden := createField(t, svc, "hidden", form.SectionPersonal, 2)

	inactive := false
	_, err := svc.UpdateFormField(ctx, hidden.ID, form.UpdateFormField{Active: &inactive})
	require.NoError(t, err)

	flds, err := svc.ActiveFieldsForSection(ctx, form.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, []string{"visible"}, fieldNames(flds))

	// the admin view still shows everything
	all, err := svc.FieldsForSection(ctx, form.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, []string{"visible", "hidden"}, fieldNames(all))
}

func TestService_UpdateFormField_partialMerge(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	fld := createField(t, svc, "email", form.SectionContact, 1)

	required := true
	got, err := svc.UpdateFormField(ctx, fld.ID, form.UpdateFormField{Required: &required})
	require.NoError(t, err)

	assert.True(t, got.Required)
	assert.Equal(t, fld.Name, got.Name, "omitted fields keep their value")
	assert.Equal(t, fld.Label, got.Label)
	assert.Equal(t, fld.Section, got.Section)
	assert.Equal(t, fld.Order, got.Order)
	assert.Equal(t, fld.ID, got.ID)
}

func TestService_UpdateFormField_notFound(t *testing.T) {
	svc := setup(t)

	_, err := svc.UpdateFormField(context.Background(), 404, form.UpdateFormField{Label: "lol"})
	assert.Equal(t, form.ErrNotFound, err)
}

func TestService_UpdateFormField_renameChecksUniqueness(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	createField(t, svc, "email", form.SectionContact, 1)
	fld := createField(t, svc, "phone", form.SectionContact, 2)

	_, err := svc.UpdateFormField(ctx, fld.ID, form.UpdateFormField{Name: "email"})
	require.Error(t, err)

	// renaming to its own name is fine
	_, err = svc.UpdateFormField(ctx, fld.ID, form.UpdateFormField{Name: "phone"})
	assert.NoError(t, err)
}

func TestService_DeleteFormField(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	fld := createField(t, svc, "email", form.SectionContact, 1)

	require.NoError(t, svc.DeleteFormField(ctx, fld.ID))

	_, err := svc.GetFormField(ctx, fld.ID)
	assert.Equal(t, form.ErrNotFound, err)

	flds, err := svc.FieldsForSection(ctx, form.SectionContact)
	require.NoError(t, err)
	assert.Empty(t, flds)

	// deleting an absent id is a silent success
	assert.NoError(t, svc.DeleteFormField(ctx, fld.ID))
}

func TestService_ReorderFormFields(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	a := createField(t, svc, "a", form.SectionPersonal, 1)
	b := createField(t, svc, "b", form.SectionPersonal, 2)
	c := createField(t, svc, "c", form.SectionPersonal, 3)

	flds, err := svc.ReorderFormFields(ctx, form.SectionPersonal, []int{c.ID, a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, fieldNames(flds))
	assert.Equal(t, []int{1, 2, 3}, fieldOrders(flds), "orders are reassigned densely")
}

func TestService_ReorderFormFields_mustCoverSection(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	a := createField(t, svc, "a", form.SectionPersonal, 1)
	b := createField(t, svc, "b", form.SectionPersonal, 2)

	// partial list
	_, err := svc.ReorderFormFields(ctx, form.SectionPersonal, []int{b.ID})
	require.Error(t, err)

	// unknown id
	_, err = svc.ReorderFormFields(ctx, form.SectionPersonal, []int{a.ID, 404})
	require.Error(t, err)

	// nothing changed
	flds, err := svc.FieldsForSection(ctx, form.SectionPersonal)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fieldNames(flds))
}

func TestService_MoveFormField(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	createField(t, svc, "a", form.SectionPersonal, 1)
	createField(t, svc, "b", form.SectionPersonal, 2)
	createField(t, svc, "c", form.SectionPersonal, 3)

	flds, err := svc.MoveFormField(ctx, form.SectionPersonal, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, fieldNames(flds))
	assert.Equal(t, []int{1, 2, 3}, fieldOrders(flds))

	// moving back restores the original sequence
	flds, err = svc.MoveFormField(ctx, form.SectionPersonal, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fieldNames(flds))
	assert.Equal(t, []int{1, 2, 3}, fieldOrders(flds))
}

func TestService_MoveFormField_badIndex(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	createField(t, svc, "a", form.SectionPersonal, 1)

	_, err := svc.MoveFormField(ctx, form.SectionPersonal, 0, 5)
	require.Error(t, err)
	_, err = svc.MoveFormField(ctx, form.SectionPersonal, -1, 0)
	require.Error(t, err)
}

func TestService_MissingRequired(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	nf := form.NewFormField{
		Name:     "fullName",
		Label:    "Nome Completo",
		Type:     form.TypeText,
		Required: true,
		Section:  form.SectionPersonal,
	}
	require.NoError(t, nf.Validate(svc))
	_, err := svc.CreateFormField(ctx, nf)
	require.NoError(t, err)
	createField(t, svc, "nickname", form.SectionPersonal, 0) // optional

	missing, err := svc.MissingRequired(ctx, form.SectionPersonal, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, []string{"fullName"}, missing)

	// blank values do not count
	missing, err = svc.MissingRequired(ctx, form.SectionPersonal, map[string]string{"fullName": "   "})
	require.NoError(t, err)
	assert.Equal(t, []string{"fullName"}, missing)

	missing, err = svc.MissingRequired(ctx, form.SectionPersonal, map[string]string{"fullName": "Ana Silva"})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestService_SeedDefaults(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	empty, err := svc.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, svc.SeedDefaults(ctx))

	empty, err = svc.IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)

	flds, err := svc.QueryAllFormFields(ctx)
	require.NoError(t, err)
	assert.Len(t, flds, 18)

	personal, err := svc.FieldsForSection(ctx, form.SectionPersonal)
	require.NoError(t, err)
	assert.Len(t, personal, 9)
	contact, err := svc.FieldsForSection(ctx, form.SectionContact)
	require.NoError(t, err)
	assert.Len(t, contact, 5)
	course, err := svc.FieldsForSection(ctx, form.SectionCourse)
	require.NoError(t, err)
	assert.Len(t, course, 4)

	reqs, err := svc.QueryAllRequirements(ctx)
	require.NoError(t, err)
	assert.Len(t, reqs, 5)

	// seeding twice is a no-op
	require.NoError(t, svc.SeedDefaults(ctx))
	flds, err = svc.QueryAllFormFields(ctx)
	require.NoError(t, err)
	assert.Len(t, flds, 18)
}

func TestService_SeedDefaults_optionCatalogs(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	flds, err := svc.QueryAllFormFields(ctx)
	require.NoError(t, err)

	byName := make(map[string]form.FormField, len(flds))
	for _, fld := range flds {
		byName[fld.Name] = fld
	}

	assert.Len(t, byName["gender"].Options, 4)
	assert.Len(t, byName["state"].Options, 27)
	assert.Empty(t, byName["course"].Options, "course options come from the catalog, not the definition")
}

func TestService_Requirements(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	rg := createRequirement(t, svc, "RG", 0)
	assert.Equal(t, 1, rg.Order)
	cpf := createRequirement(t, svc, "CPF", 0)
	assert.Equal(t, 2, cpf.Order)

	// duplicate name rejected
	nr := form.NewDocumentRequirement{Name: "RG"}
	require.Error(t, nr.Validate(svc))

	// reorder
	reqs, err := svc.ReorderRequirements(ctx, []int{cpf.ID, rg.ID})
	require.NoError(t, err)
	assert.Equal(t, "CPF", reqs[0].Name)
	assert.Equal(t, []int{1, 2}, []int{reqs[0].Order, reqs[1].Order})

	// move back
	reqs, err = svc.MoveRequirement(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "RG", reqs[0].Name)

	// active filter
	inactive := false
	_, err = svc.UpdateRequirement(ctx, cpf.ID, form.UpdateDocumentRequirement{Active: &inactive})
	require.NoError(t, err)
	active, err := svc.ActiveRequirements(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "RG", active[0].Name)

	// silent delete
	require.NoError(t, svc.DeleteRequirement(ctx, 404))
	require.NoError(t, svc.DeleteRequirement(ctx, cpf.ID))
	reqs, err = svc.QueryAllRequirements(ctx)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}
