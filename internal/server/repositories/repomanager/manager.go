// Package repomanager vends repository implementations bound to a database
// handle, so services can obtain repositories for either a plain connection
// or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/accesstokens"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

// RepositoryManager constructs repositories over the given DBTX and runs
// schema migrations.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	AccessTokens(db dbx.DBTX) accesstokens.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
