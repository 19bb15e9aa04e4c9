package document

import (
	"time"

	"github.com/easymatricula/matricula/core"
)

// Document is one uploaded file attached to a student's enrollment. Type is
// the name of the DocumentRequirement slot it fulfills.
type Document struct {
	ID         int       `json:"id"`
	StudentID  int       `json:"student_id"`
	Type       string    `json:"type"`
	FileName   string    `json:"file_name"`
	FileData   string    `json:"file_data"` // base64 encoded content
	MimeType   string    `json:"mime_type"`
	UploadDate time.Time `json:"upload_date"` // UTC
}

// NewDocument contains information needed to store a new upload.
type NewDocument struct {
	StudentID int    `json:"student_id" validate:"required,min=1"`
	Type      string `json:"type" validate:"required"`
	FileName  string `json:"file_name" validate:"required"`
	FileData  string `json:"file_data" validate:"required,base64"`
	MimeType  string `json:"mime_type" validate:"required"`
}

func (nd *NewDocument) Validate() error {
	nd.Type = core.CleanString(nd.Type)
	nd.FileName = core.CleanString(nd.FileName)
	nd.MimeType = core.CleanString(nd.MimeType, true /* lower */)
	return core.Validate.Struct(nd)
}
