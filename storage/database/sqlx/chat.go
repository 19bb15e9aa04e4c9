package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/chat"
)

type messageRow struct {
	ID        int           `db:"id"`
	StudentID sql.NullInt64 `db:"student_id"`
	Sender    string        `db:"sender"`
	Message   string        `db:"message"`
	Timestamp time.Time     `db:"timestamp"`
}

func (row messageRow) message() chat.Message {
	return chat.Message{
		ID:        row.ID,
		StudentID: int(row.StudentID.Int64),
		Sender:    row.Sender,
		Message:   row.Message,
		Timestamp: row.Timestamp.UTC(),
	}
}

type messageRepository struct {
	db *sqlx.DB
}

var _ chat.Repository = (*messageRepository)(nil) // interface compliance check

func NewMessageRepository(db *sqlx.DB) chat.Repository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) CreateMessage(ctx context.Context, msg chat.Message) (chat.Message, error) {
	studentID := sql.NullInt64{Int64: int64(msg.StudentID), Valid: msg.StudentID > 0}
	err := repo.db.GetContext(ctx, &msg.ID,
		`INSERT INTO chat_message (student_id, sender, message, timestamp)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		studentID, msg.Sender, msg.Message, msg.Timestamp,
	)
	if err != nil {
		return chat.Message{}, errors.Wrap(err, "inserting chat message")
	}
	return msg, nil
}

func (repo *messageRepository) QueryMessagesByStudentID(ctx context.Context, studentID int) ([]chat.Message, error) {
	var rows []messageRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM chat_message WHERE student_id = $1 ORDER BY timestamp, id`, studentID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying chat messages")
	}
	msgs := make([]chat.Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, row.message())
	}
	return msgs, nil
}
