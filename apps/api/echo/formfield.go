package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core"
	"github.com/easymatricula/matricula/core/form"
)

type (
	// FieldReorderRequest is the full ordered id list of one section.
	FieldReorderRequest struct {
		Section string `json:"section" validate:"required,oneof=personal contact course"`
		IDs     []int  `json:"ids" validate:"required,min=1,unique"`
	}
)

func (r *FieldReorderRequest) Validate() error { return core.Validate.Struct(r) }

type formFieldApi struct {
	svc *form.Service
}

func registerFormFieldAPI(g, admin *echo.Group, svc *form.Service) {
	api := formFieldApi{svc: svc}

	// public: the enrollment wizard reads the current configuration
	g.GET("/form-fields", api.query)

	// admin: configuration management
	ag := admin.Group("/form-fields")
	ag.POST("", api.create)
	ag.PUT("/order", api.reorder)
	ag.POST("/move", api.move)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

// query lists definitions sorted by (order, id). ?section= narrows to one
// section; ?active=true narrows to the renderer view.
func (api *formFieldApi) query(ctx echo.Context) error {
	section := ctx.QueryParam("section")
	activeOnly, _ := strconv.ParseBool(ctx.QueryParam("active"))

	var flds []form.FormField
	var err error
	switch {
	case section != "" && activeOnly:
		flds, err = api.svc.ActiveFieldsForSection(ctx.Request().Context(), section)
	case section != "":
		flds, err = api.svc.FieldsForSection(ctx.Request().Context(), section)
	case activeOnly:
		flds, err = api.svc.ActiveFields(ctx.Request().Context())
	default:
		flds, err = api.svc.QueryAllFormFields(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying form fields")
	}
	return ctx.JSON(http.StatusOK, flds)
}

func (api *formFieldApi) create(ctx echo.Context) error {
	var data form.NewFormField
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFormField")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	fld, err := api.svc.CreateFormField(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating form field")
	}
	return ctx.JSON(http.StatusCreated, fld)
}

func (api *formFieldApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data form.UpdateFormField
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFormField")
	}

	fld, err := api.svc.UpdateFormField(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == form.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, fld)
}

func (api *formFieldApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteFormField(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting form field")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *formFieldApi) reorder(ctx echo.Context) error {
	var data FieldReorderRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to FieldReorderRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	flds, err := api.svc.ReorderFormFields(ctx.Request().Context(), data.Section, data.IDs)
	if err != nil {
		if errors.Cause(err) == form.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, flds)
}

func (api *formFieldApi) move(ctx echo.Context) error {
	var data form.Move
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Move")
	}
	if data.Section == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "section", Error: "this field is required"})
	}
	if err := data.Validate(); err != nil {
		return err
	}

	flds, err := api.svc.MoveFormField(ctx.Request().Context(), data.Section, data.SourceIndex, data.DestIndex)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, flds)
}

// pathID parses the :id path param.
func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		return 0, errHttpBadRequest
	}
	return id, nil
}
