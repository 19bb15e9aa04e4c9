package dummydb

import (
	"context"
	"sort"

	"github.com/easymatricula/matricula/core/document"
)

type documentRepository struct {
	db *documentTable
}

var _ document.Repository = (*documentRepository)(nil) // interface compliance check

func NewDocumentRepository(db *DB) document.Repository {
	return &documentRepository{db: db.documents}
}

func (repo *documentRepository) CreateDocument(_ context.Context, doc document.Document) (document.Document, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	doc.ID = repo.db.seq
	repo.db.rows[doc.ID] = &doc
	return doc, nil
}

func (repo *documentRepository) GetDocumentByID(_ context.Context, id int) (document.Document, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if doc, ok := repo.db.rows[id]; ok {
		return *doc, nil
	}
	return document.Document{}, document.ErrNotFound
}

func (repo *documentRepository) QueryDocumentsByStudentID(_ context.Context, studentID int) ([]document.Document, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	docs := make([]document.Document, 0)
	for _, doc := range repo.db.rows {
		if doc.StudentID == studentID {
			docs = append(docs, *doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}
