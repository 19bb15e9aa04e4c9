// Package sqlxrepos implements the domain repositories on PostgreSQL
// via sqlx. Schema lives in storage/database/migrations.
package sqlxrepos

import (
	"database/sql"

	"github.com/pkg/errors"
)

// trapNoRowsErr maps psql "no rows" err to the domain's not-found sentinel.
func trapNoRowsErr(err, notFound error, msg string) error {
	if err == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrap(err, msg)
}
