package cmd

import (
	"fmt"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/selection"
	"github.com/abhisek/financelab/internal/session"
	"github.com/abhisek/financelab/internal/store"
	"github.com/spf13/cobra"
)

// deps holds everything a learner-facing command needs.
type deps struct {
	db      *store.Store
	catalog *content.Catalog
	states  *store.StateStore
}

// openDeps loads the catalog, opens the store and reads learner state.
func openDeps(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()

	catalog, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	states, err := store.LoadState(ctx, db.StateRepo(), logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &deps{db: db, catalog: catalog, states: states}, nil
}

func (d *deps) Close() {
	if err := d.db.Close(); err != nil {
		logger.Warn("close store", "error", err)
	}
}

func (d *deps) sessions() *session.Service {
	sel := selection.New(cfg.Selection(), nil)
	return session.NewService(d.catalog, sel, d.states, logger)
}
