package chat

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateMessage(ctx context.Context, msg Message) (Message, error)
		// QueryMessagesByStudentID returns messages sorted by (timestamp, id) ascending.
		QueryMessagesByStudentID(ctx context.Context, studentID int) ([]Message, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nm NewMessage) (Message, error) {
	msg := Message{
		StudentID: nm.StudentID,
		Sender:    nm.Sender,
		Message:   nm.Message,
		Timestamp: time.Now().UTC(),
	}
	return svc.repo.CreateMessage(ctx, msg)
}

func (svc *Service) QueryByStudent(ctx context.Context, studentID int) ([]Message, error) {
	return svc.repo.QueryMessagesByStudentID(ctx, studentID)
}
