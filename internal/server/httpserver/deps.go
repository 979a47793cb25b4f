package httpserver

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/catalog/internal/logging"
	"github.com/dmitrijs2005/catalog/internal/server/config"
	"github.com/dmitrijs2005/catalog/internal/server/repositories/repomanager"
)

// Deps is what the handlers need from the process.
type Deps struct {
	DB        *sql.DB
	Repos     repomanager.RepositoryManager
	Config    *config.Config
	Logger    logging.Logger
	StartTime time.Time
}
