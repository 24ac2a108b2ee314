// Package cli implements the interactive shell over the wellkeeper stores.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dkrastev/wellkeeper/internal/assessment"
	"github.com/dkrastev/wellkeeper/internal/auth"
	"github.com/dkrastev/wellkeeper/internal/config"
	"github.com/dkrastev/wellkeeper/internal/logging"
	"github.com/dkrastev/wellkeeper/internal/mood"
	"github.com/dkrastev/wellkeeper/internal/profile"
	"github.com/dkrastev/wellkeeper/internal/storage"
	"github.com/dkrastev/wellkeeper/internal/water"

	_ "modernc.org/sqlite"
)

// App wires the stores to the interactive shell. All shared state lives in
// the store objects; the app itself only holds references.
type App struct {
	cfg *config.Config
	log logging.Logger

	adapter     storage.Adapter
	db          *sql.DB
	auth        *auth.Service
	moods       *mood.Store
	profiles    *profile.Store
	assessments *assessment.Store

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	adapter, db, err := storage.Open(ctx, cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open device storage: %w", err)
	}

	backend, err := auth.NewStubBackend(cfg.Auth.DevEmail, cfg.Auth.DevPassword, cfg.Auth.StubDelay)
	if err != nil {
		db.Close()
		return nil, err
	}
	if cfg.Auth.APIKey != "" {
		// A live backend is an external collaborator; until one is wired
		// in, an API key only changes the log line.
		log.Warn(ctx, "live auth backend not configured, using stub")
	}

	authService := auth.NewService(backend, log, []byte(cfg.Auth.SecretKey), cfg.Auth.TokenValidity)

	return &App{
		cfg:         cfg,
		log:         log,
		adapter:     adapter,
		db:          db,
		auth:        authService,
		moods:       mood.NewStore(adapter, log),
		profiles:    profile.NewStore(adapter, log),
		assessments: assessment.NewStore(adapter, log, nil),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		now:         time.Now,
	}, nil
}

// Run starts the shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "wellkeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the device database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.Session()
	return ok
}

func (a *App) status() string {
	if s, ok := a.auth.Session(); ok {
		return s.User.Email
	}
	return "not logged in"
}

func (a *App) today() string {
	return a.now().Format(time.DateOnly)
}

// tracker builds a hydration tracker from the current profile. Sex and
// weight default to the female coefficient baseline when unset.
func (a *App) tracker(ctx context.Context) (*water.Tracker, error) {
	p, err := a.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}

	var sex profile.Sex
	if p.Sex != nil {
		sex = *p.Sex
	}
	var weight float64
	if p.WeightKg != nil {
		weight = *p.WeightKg
	}

	return water.NewTracker(a.adapter, a.log, water.Config{
		Sex:      sex,
		WeightKg: weight,
		Settings: a.cfg.Hydration.Settings(),
		Now:      a.now,
	}), nil
}
