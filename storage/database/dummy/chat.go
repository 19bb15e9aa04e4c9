package dummydb

import (
	"context"
	"sort"

	"github.com/easymatricula/matricula/core/chat"
)

type messageRepository struct {
	db *messageTable
}

var _ chat.Repository = (*messageRepository)(nil) // interface compliance check

func NewMessageRepository(db *DB) chat.Repository {
	return &messageRepository{db: db.messages}
}

func (repo *messageRepository) CreateMessage(_ context.Context, msg chat.Message) (chat.Message, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	msg.ID = repo.db.seq
	repo.db.rows[msg.ID] = &msg
	return msg, nil
}

func (repo *messageRepository) QueryMessagesByStudentID(_ context.Context, studentID int) ([]chat.Message, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	msgs := make([]chat.Message, 0)
	for _, msg := range repo.db.rows {
		if msg.StudentID == studentID {
			msgs = append(msgs, *msg)
		}
	}
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	return msgs, nil
}
