// Package cli implements the interactive CourseNotes client: a small REPL
// over the auth and course services. It owns the only pieces of mutable
// session state in the process: the signed-in account and the currently
// selected course.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/coursenotes/internal/auth"
	"github.com/dmitrijs2005/coursenotes/internal/config"
	"github.com/dmitrijs2005/coursenotes/internal/courses"
	"github.com/dmitrijs2005/coursenotes/internal/logging"
	"github.com/dmitrijs2005/coursenotes/internal/models"
	"github.com/dmitrijs2005/coursenotes/internal/storage"
	"github.com/dmitrijs2005/coursenotes/internal/summarizer"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	auth    *auth.Service
	courses *courses.Service
	db      *sql.DB
	log     logging.Logger

	account          *models.Account
	selectedCourseID string
	reader           *bufio.Reader
}

// NewApp wires storage, summarizer and services together and resumes a
// persisted session if one is still valid.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, repo, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sum := summarizer.New(ctx, c.GeminiAPIKey, c.GeminiModel, c.SummaryTimeout, log)

	app := &App{
		config:  c,
		auth:    auth.NewService(repo, log, c.SessionValidity),
		courses: courses.NewService(repo, sum, log),
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}

	if account, err := app.auth.CurrentAccount(ctx); err == nil && account != nil {
		app.account = account
	}

	return app, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}
