package main

import (
	"errors"

	"github.com/easymatricula/matricula/storage/database"
)

var migrateFunc = database.RunMigration // mockable

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errors.New("migrations require the postgres backend")
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return migrateFunc(args[0], cli.db.DB, arguments...)
}
