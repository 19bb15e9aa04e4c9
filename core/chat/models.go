package chat

import (
	"time"

	"github.com/easymatricula/matricula/core"
)

// Message senders.
const (
	SenderStudent = "student"
	SenderSystem  = "system"
)

// Message is one line of the onboarding chat. StudentID is zero while the
// conversation happens before a student record exists.
type Message struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id,omitempty"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"` // UTC
}

// NewMessage contains information needed to record a chat line.
type NewMessage struct {
	StudentID int    `json:"student_id" validate:"omitempty,min=1"`
	Sender    string `json:"sender" validate:"required,oneof=student system"`
	Message   string `json:"message" validate:"required"`
}

func (nm *NewMessage) Validate() error {
	nm.Message = core.CleanString(nm.Message)
	return core.Validate.Struct(nm)
}
