package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/easymatricula/matricula/apps/api/echo"
	"github.com/easymatricula/matricula/core"
	"github.com/easymatricula/matricula/core/chat"
	"github.com/easymatricula/matricula/core/course"
	"github.com/easymatricula/matricula/core/document"
	"github.com/easymatricula/matricula/core/form"
	"github.com/easymatricula/matricula/core/student"
	"github.com/easymatricula/matricula/core/user"
	emailsvc "github.com/easymatricula/matricula/services/email"
	logsvc "github.com/easymatricula/matricula/services/logger"
	"github.com/easymatricula/matricula/storage/database"
	dummydb "github.com/easymatricula/matricula/storage/database/dummy"
	sqlxrepos "github.com/easymatricula/matricula/storage/database/sqlx"
)

type repositories struct {
	fields form.FieldRepository
	reqs   form.RequirementRepository
	stds   student.Repository
	docs   document.Repository
	msgs   chat.Repository
	crss   course.Repository
	usrs   user.Repository
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	repos, dbClose, err := setUpRepositories(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	defer dbClose()

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	formSvc := form.NewService(repos.fields, repos.reqs)
	studentSvc := student.NewService(repos.stds, mailSvc, conf)
	docSvc := document.NewService(repos.docs)
	chatSvc := chat.NewService(repos.msgs)
	courseSvc := course.NewService(repos.crss)
	userSvc := user.NewService(repos.usrs)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	if err := bootstrap(conf, logger, formSvc, courseSvc, userSvc); err != nil {
		logger.Fatal(fmt.Sprintf("bootstrapping: %v", err), err)
	}

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			FormSvc:    formSvc,
			StudentSvc: studentSvc,
			DocSvc:     docSvc,
			ChatSvc:    chatSvc,
			CourseSvc:  courseSvc,
			UserSvc:    userSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// setUpRepositories wires the storage backend selected by the configuration.
func setUpRepositories(conf *core.Config) (repositories, func(), error) {
	if conf.Database.Engine == "postgres" {
		db, err := setUpDB(conf)
		if err != nil {
			return repositories{}, nil, err
		}
		repos := repositories{
			fields: sqlxrepos.NewFormFieldRepository(db),
			reqs:   sqlxrepos.NewRequirementRepository(db),
			stds:   sqlxrepos.NewStudentRepository(db),
			docs:   sqlxrepos.NewDocumentRepository(db),
			msgs:   sqlxrepos.NewMessageRepository(db),
			crss:   sqlxrepos.NewCourseRepository(db),
			usrs:   sqlxrepos.NewUserRepository(db),
		}
		return repos, func() { _ = db.Close() }, nil
	}

	db, err := dummydb.Open()
	if err != nil {
		return repositories{}, nil, err
	}
	repos := repositories{
		fields: dummydb.NewFormFieldRepository(db),
		reqs:   dummydb.NewRequirementRepository(db),
		stds:   dummydb.NewStudentRepository(db),
		docs:   dummydb.NewDocumentRepository(db),
		msgs:   dummydb.NewMessageRepository(db),
		crss:   dummydb.NewCourseRepository(db),
		usrs:   dummydb.NewUserRepository(db),
	}
	return repos, func() {}, nil
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB); err != nil {
		return nil, err
	}
	return db, nil
}

// bootstrap seeds the default configuration and the admin account.
func bootstrap(
	conf *core.Config,
	logger core.Logger,
	formSvc *form.Service,
	courseSvc *course.Service,
	userSvc *user.Service,
) error {
	ctx := context.Background()

	empty, err := formSvc.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if empty {
		logger.Info("seeding default form configuration")
		if err := formSvc.SeedDefaults(ctx); err != nil {
			return err
		}
	}

	if err := courseSvc.SeedDefaults(ctx); err != nil {
		return err
	}

	if conf.AdminPassword == "" {
		logger.Warn("no admin password configured; skipping admin account seeding")
		return nil
	}
	if _, err := userSvc.EnsureAdmin(ctx, conf.AdminUsername, conf.AdminPassword); err != nil {
		return err
	}
	return nil
}
