// Package wire provides dependency injection for the careledger
// application. It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/careledger/internal/adapters/cli"
	"github.com/example/careledger/internal/adapters/jsonfile"
	"github.com/example/careledger/internal/adapters/sqlite"
	"github.com/example/careledger/internal/app"
	"github.com/example/careledger/internal/config"
	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/db"
	"github.com/example/careledger/internal/ports/primary"
	"github.com/example/careledger/internal/ports/secondary"
)

var (
	rosterService primary.RosterService
	once          sync.Once
)

// RosterService returns the singleton RosterService, loaded from the
// persisted snapshot.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// initServices initializes the store, the snapshot backend selected by
// configuration, and the service, then loads persisted state.
func initServices() {
	dir, err := config.DefaultDir()
	if err != nil {
		log.Fatalf("failed to locate data directory: %v", err)
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var snapshots secondary.SnapshotStore
	switch cfg.Backend {
	case config.BackendSQLite:
		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		snapshots = sqlite.NewSnapshotRepository(database)
	case config.BackendJSON:
		snapshots = jsonfile.NewSnapshotStore(cfg.SnapshotPath())
	default:
		log.Fatalf("unknown persistence backend %q", cfg.Backend)
	}

	service := app.NewRosterService(roster.NewStore(), snapshots)
	if err := service.Load(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
	rosterService = service
}

// SeniorAdapter returns a new SeniorAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func SeniorAdapter() *cliadapter.SeniorAdapter {
	return SeniorAdapterWithOutput(os.Stdout)
}

// SeniorAdapterWithOutput returns a new SeniorAdapter writing to the
// given output, for tests or alternate destinations.
func SeniorAdapterWithOutput(out io.Writer) *cliadapter.SeniorAdapter {
	return cliadapter.NewSeniorAdapter(RosterService(), out)
}

// CaregiverAdapter returns a new CaregiverAdapter writing to stdout.
func CaregiverAdapter() *cliadapter.CaregiverAdapter {
	return CaregiverAdapterWithOutput(os.Stdout)
}

// CaregiverAdapterWithOutput returns a new CaregiverAdapter writing to
// the given output.
func CaregiverAdapterWithOutput(out io.Writer) *cliadapter.CaregiverAdapter {
	return cliadapter.NewCaregiverAdapter(RosterService(), out)
}

// RosterAdapter returns a new RosterAdapter writing to stdout.
func RosterAdapter() *cliadapter.RosterAdapter {
	return RosterAdapterWithOutput(os.Stdout)
}

// RosterAdapterWithOutput returns a new RosterAdapter writing to the
// given output.
func RosterAdapterWithOutput(out io.Writer) *cliadapter.RosterAdapter {
	return cliadapter.NewRosterAdapter(RosterService(), out)
}
