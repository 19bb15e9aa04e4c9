package document

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("document not found")

type (
	Repository interface {
		CreateDocument(ctx context.Context, doc Document) (Document, error)
		GetDocumentByID(ctx context.Context, id int) (Document, error)
		QueryDocumentsByStudentID(ctx context.Context, studentID int) ([]Document, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nd NewDocument) (Document, error) {
	doc := Document{
		StudentID:  nd.StudentID,
		Type:       nd.Type,
		FileName:   nd.FileName,
		FileData:   nd.FileData,
		MimeType:   nd.MimeType,
		UploadDate: time.Now().UTC(),
	}
	return svc.repo.CreateDocument(ctx, doc)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Document, error) {
	return svc.repo.GetDocumentByID(ctx, id)
}

func (svc *Service) QueryByStudent(ctx context.Context, studentID int) ([]Document, error) {
	return svc.repo.QueryDocumentsByStudentID(ctx, studentID)
}
