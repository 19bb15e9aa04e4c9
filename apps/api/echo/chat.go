package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/chat"
)

type chatApi struct {
	svc *chat.Service
}

func registerChatAPI(g *echo.Group, svc *chat.Service) {
	api := chatApi{svc: svc}

	g.POST("/chat-messages", api.create)
	g.GET("/students/:id/chat-messages", api.queryByStudent)
}

// Handlers

func (api *chatApi) create(ctx echo.Context) error {
	var data chat.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	msg, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating chat message")
	}
	return ctx.JSON(http.StatusCreated, msg)
}

func (api *chatApi) queryByStudent(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	msgs, err := api.svc.QueryByStudent(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying chat messages")
	}
	return ctx.JSON(http.StatusOK, msgs)
}
