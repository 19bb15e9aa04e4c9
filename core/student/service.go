package student

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/easymatricula/matricula/core"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(ctx context.Context, std Student) (Student, error)
		GetStudentByID(ctx context.Context, id int) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		UpdateStudent(ctx context.Context, std Student) (Student, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	std := Student{
		Status:           StatusPending,
		RegistrationDate: time.Now().UTC(),
		Data:             ns.Data,
	}
	std, err := svc.repo.CreateStudent(ctx, std)
	if err != nil {
		return Student{}, err
	}
	svc.sendConfirmation(std)
	return std, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	std, err := svc.repo.GetStudentByID(ctx, id)
	if err != nil {
		return Student{}, err
	}
	if us.Status != "" {
		std.Status = us.Status
	}
	for key, val := range us.Data {
		std.Data[key] = val
	}
	return svc.repo.UpdateStudent(ctx, std)
}

func (svc *Service) sendConfirmation(std Student) {
	if std.Email() == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: std.FullName(), Address: std.Email()}},
		Subject:      "Inscrição recebida",
		TemplateName: "welcome",
		TemplateData: struct {
			FullName string
			Course   string
		}{std.FullName(), std.Data["course"]},
	})
}
