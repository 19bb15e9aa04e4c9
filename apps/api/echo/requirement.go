package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/form"
)

type requirementApi struct {
	svc *form.Service
}

func registerRequirementAPI(g, admin *echo.Group, svc *form.Service) {
	api := requirementApi{svc: svc}

	// public: the upload checklist reads the current configuration
	g.GET("/document-requirements", api.query)

	// admin: configuration management
	ag := admin.Group("/document-requirements")
	ag.POST("", api.create)
	ag.PUT("/order", api.reorder)
	ag.POST("/move", api.move)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *requirementApi) query(ctx echo.Context) error {
	activeOnly, _ := strconv.ParseBool(ctx.QueryParam("active"))

	var reqs []form.DocumentRequirement
	var err error
	if activeOnly {
		reqs, err = api.svc.ActiveRequirements(ctx.Request().Context())
	} else {
		reqs, err = api.svc.QueryAllRequirements(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying requirements")
	}
	return ctx.JSON(http.StatusOK, reqs)
}

func (api *requirementApi) create(ctx echo.Context) error {
	var data form.NewDocumentRequirement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDocumentRequirement")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	req, err := api.svc.CreateRequirement(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating requirement")
	}
	return ctx.JSON(http.StatusCreated, req)
}

func (api *requirementApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data form.UpdateDocumentRequirement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateDocumentRequirement")
	}

	req, err := api.svc.UpdateRequirement(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == form.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, req)
}

func (api *requirementApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteRequirement(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting requirement")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *requirementApi) reorder(ctx echo.Context) error {
	var data form.Reorder
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Reorder")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	reqs, err := api.svc.ReorderRequirements(ctx.Request().Context(), data.IDs)
	if err != nil {
		if errors.Cause(err) == form.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, reqs)
}

func (api *requirementApi) move(ctx echo.Context) error {
	var data form.Move
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Move")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	reqs, err := api.svc.MoveRequirement(ctx.Request().Context(), data.SourceIndex, data.DestIndex)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reqs)
}
