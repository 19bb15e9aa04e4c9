package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/easymatricula/matricula/core"
	"github.com/easymatricula/matricula/core/user"
	"github.com/easymatricula/matricula/storage/database"
	dummydb "github.com/easymatricula/matricula/storage/database/dummy"
	sqlxrepos "github.com/easymatricula/matricula/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	var db *sqlx.DB
	var usrRepo user.Repository
	if conf.Database.Engine == "postgres" {
		var err error
		db, err = database.Open(conf)
		errAndDie(err)
		defer func() { _ = db.Close() }()
		errAndDie(db.Ping())
		usrRepo = sqlxrepos.NewUserRepository(db)
	} else {
		mem, err := dummydb.Open()
		errAndDie(err)
		usrRepo = dummydb.NewUserRepository(mem)
	}

	cli := commandLine{
		db:     db,
		usrSvc: user.NewService(usrRepo),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
