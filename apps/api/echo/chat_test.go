package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymatricula/matricula/core/chat"
)

func Test_chatApi(t *testing.T) {
	srv, deps := setup(t)

	t.Run("create", func(t *testing.T) {
		body := marchallObj(t, chat.NewMessage{Sender: chat.SenderStudent, Message: "Olá, quero me inscrever"})
		req, rec := newRequest(http.MethodPost, "/api/chat-messages", body)
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var msg chat.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		assert.Equal(t, 1, msg.ID)
		assert.Zero(t, msg.StudentID)
		assert.False(t, msg.Timestamp.IsZero())
	})

	t.Run("create: unknown sender", func(t *testing.T) {
		body := marchallObj(t, chat.NewMessage{Sender: "bot", Message: "hi"})
		req, rec := newRequest(http.MethodPost, "/api/chat-messages", body)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("transcript by student", func(t *testing.T) {
		ctx := context.Background()
		first, err := deps.ChatSvc.Create(ctx, chat.NewMessage{StudentID: 7, Sender: chat.SenderStudent, Message: "oi"})
		require.NoError(t, err)
		second, err := deps.ChatSvc.Create(ctx, chat.NewMessage{StudentID: 7, Sender: chat.SenderSystem, Message: "olá!"})
		require.NoError(t, err)

		req, rec := newRequest(http.MethodGet, "/api/students/7/chat-messages")
		srv.ServeHTTP(rec, req)

		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []chat.Message{first, second}),
		}, rec)
	})
}
