// Package dummydb is the in-memory storage backend: one mutex-guarded map
// per table with a sequential, never-reused pk counter. It backs local runs
// and the test suites.
package dummydb

import (
	"sync"

	"github.com/easymatricula/matricula/core/chat"
	"github.com/easymatricula/matricula/core/course"
	"github.com/easymatricula/matricula/core/document"
	"github.com/easymatricula/matricula/core/form"
	"github.com/easymatricula/matricula/core/student"
	"github.com/easymatricula/matricula/core/user"
)

type (
	DB struct {
		formFields   *formFieldTable
		requirements *requirementTable
		students     *studentTable
		documents    *documentTable
		messages     *messageTable
		courses      *courseTable
		shifts       *shiftTable
		modalities   *modalityTable
		users        *userTable
	}

	formFieldTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*form.FormField
	}
	requirementTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*form.DocumentRequirement
	}
	studentTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*student.Student
	}
	documentTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*document.Document
	}
	messageTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*chat.Message
	}
	courseTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*course.Course
	}
	shiftTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*course.Shift
	}
	modalityTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*course.Modality
	}
	userTable struct {
		sync.RWMutex
		seq  int
		rows map[int]*user.User
	}
)

func Open() (*DB, error) {
	db := &DB{
		formFields:   &formFieldTable{rows: make(map[int]*form.FormField)},
		requirements: &requirementTable{rows: make(map[int]*form.DocumentRequirement)},
		students:     &studentTable{rows: make(map[int]*student.Student)},
		documents:    &documentTable{rows: make(map[int]*document.Document)},
		messages:     &messageTable{rows: make(map[int]*chat.Message)},
		courses:      &courseTable{rows: make(map[int]*course.Course)},
		shifts:       &shiftTable{rows: make(map[int]*course.Shift)},
		modalities:   &modalityTable{rows: make(map[int]*course.Modality)},
		users:        &userTable{rows: make(map[int]*user.User)},
	}
	return db, nil
}
