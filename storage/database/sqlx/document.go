package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/easymatricula/matricula/core/document"
)

type documentRow struct {
	ID         int       `db:"id"`
	StudentID  int       `db:"student_id"`
	Type       string    `db:"type"`
	FileName   string    `db:"file_name"`
	FileData   string    `db:"file_data"`
	MimeType   string    `db:"mime_type"`
	UploadDate time.Time `db:"upload_date"`
}

func (row documentRow) document() document.Document {
	return document.Document{
		ID:         row.ID,
		StudentID:  row.StudentID,
		Type:       row.Type,
		FileName:   row.FileName,
		FileData:   row.FileData,
		MimeType:   row.MimeType,
		UploadDate: row.UploadDate.UTC(),
	}
}

type documentRepository struct {
	db *sqlx.DB
}

var _ document.Repository = (*documentRepository)(nil) // interface compliance check

func NewDocumentRepository(db *sqlx.DB) document.Repository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) CreateDocument(ctx context.Context, doc document.Document) (document.Document, error) {
	err := repo.db.GetContext(ctx, &doc.ID,
		`INSERT INTO document (student_id, type, file_name, file_data, mime_type, upload_date)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		doc.StudentID, doc.Type, doc.FileName, doc.FileData, doc.MimeType, doc.UploadDate,
	)
	if err != nil {
		return document.Document{}, errors.Wrap(err, "inserting document")
	}
	return doc, nil
}

func (repo *documentRepository) GetDocumentByID(ctx context.Context, id int) (document.Document, error) {
	var row documentRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM document WHERE id = $1`, id)
	if err != nil {
		return document.Document{}, trapNoRowsErr(err, document.ErrNotFound, "getting document")
	}
	return row.document(), nil
}

func (repo *documentRepository) QueryDocumentsByStudentID(ctx context.Context, studentID int) ([]document.Document, error) {
	var rows []documentRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM document WHERE student_id = $1 ORDER BY id`, studentID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying documents")
	}
	docs := make([]document.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.document())
	}
	return docs, nil
}
