package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/document"
)

type documentApi struct {
	svc *document.Service
}

func registerDocumentAPI(g *echo.Group, svc *document.Service) {
	api := documentApi{svc: svc}

	g.POST("/documents", api.create)
	g.GET("/students/:id/documents", api.queryByStudent)
}

// Handlers

func (api *documentApi) create(ctx echo.Context) error {
	var data document.NewDocument
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDocument")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating document")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *documentApi) queryByStudent(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	docs, err := api.svc.QueryByStudent(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying documents")
	}
	return ctx.JSON(http.StatusOK, docs)
}
