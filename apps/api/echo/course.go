package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/course"
)

type courseApi struct {
	svc *course.Service
}

func registerCourseAPI(g, admin *echo.Group, svc *course.Service) {
	api := courseApi{svc: svc}

	// public: the enrollment wizard reads the catalog
	g.GET("/courses", api.query)
	g.GET("/courses/:id", api.retrieve)
	g.GET("/courses/:id/shifts", api.queryShifts)
	g.GET("/courses/:id/modalities", api.queryModalities)

	// admin: catalog management
	cg := admin.Group("/courses")
	cg.POST("", api.create)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)

	sg := admin.Group("/course-shifts")
	sg.POST("", api.createShift)
	sg.PUT("/:id", api.updateShift)
	sg.DELETE("/:id", api.destroyShift)

	mg := admin.Group("/course-modalities")
	mg.POST("", api.createModality)
	mg.PUT("/:id", api.updateModality)
	mg.DELETE("/:id", api.destroyModality)
}

// Course handlers

func (api *courseApi) query(ctx echo.Context) error {
	crss, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, crss)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	crs, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting course")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) create(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *courseApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data course.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Shift handlers

func (api *courseApi) queryShifts(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	shs, err := api.svc.QueryShifts(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying shifts")
	}
	return ctx.JSON(http.StatusOK, shs)
}

func (api *courseApi) createShift(ctx echo.Context) error {
	var data course.NewShift
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewShift")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sh, err := api.svc.CreateShift(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "creating shift")
	}
	return ctx.JSON(http.StatusCreated, sh)
}

func (api *courseApi) updateShift(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data course.UpdateShift
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateShift")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sh, err := api.svc.UpdateShift(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, sh)
}

func (api *courseApi) destroyShift(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteShift(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting shift")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Modality handlers

func (api *courseApi) queryModalities(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	mods, err := api.svc.QueryModalities(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying modalities")
	}
	return ctx.JSON(http.StatusOK, mods)
}

func (api *courseApi) createModality(ctx echo.Context) error {
	var data course.NewModality
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewModality")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mod, err := api.svc.CreateModality(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "creating modality")
	}
	return ctx.JSON(http.StatusCreated, mod)
}

func (api *courseApi) updateModality(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data course.UpdateModality
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateModality")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mod, err := api.svc.UpdateModality(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, mod)
}

func (api *courseApi) destroyModality(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteModality(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting modality")
	}
	return ctx.NoContent(http.StatusNoContent)
}
