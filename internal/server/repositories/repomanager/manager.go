// Package repomanager owns the database handle: it opens the connection,
// runs migrations, and hands out the per-collection repositories.
package repomanager

import (
	"database/sql"

	"github.com/mpetrenko/videostore/internal/server/repositories/customers"
	"github.com/mpetrenko/videostore/internal/server/repositories/users"
	"github.com/mpetrenko/videostore/internal/server/repositories/videos"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Customers() customers.Repository
	Videos() videos.Repository
	Close() error
}
