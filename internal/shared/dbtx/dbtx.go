package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm handle bound to ctx that runs on tx when one is set.
// Repositories call it so that WithTx actually scopes their statements.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	session := db.Session(&gorm.Session{NewDB: true, Context: ctx})
	session.Statement.ConnPool = tx
	return session
}
