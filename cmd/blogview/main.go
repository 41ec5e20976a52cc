package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/blogview/internal/config"
	"github.com/jask/blogview/internal/database"
	"github.com/jask/blogview/internal/database/repository"
	"github.com/jask/blogview/internal/logging"
	"github.com/jask/blogview/internal/post"
	"github.com/jask/blogview/internal/service"
	"github.com/jask/blogview/internal/tui"
)

// cli carries what every subcommand needs once flags are parsed.
type cli struct {
	cfgPath string
	verbose bool

	cfg config.Config
	log *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "blogview",
		Short:        "Read a small blog in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.view(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "config file (default ~/.config/blogview/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		seedCommand(c),
		generateCommand(c),
		postsCommand(c),
		configCommand(c),
	)
	return root
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, c.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	c.cfg, c.log = cfg, logger
	return nil
}

func (c *cli) view(ctx context.Context) error {
	provider, closeFn, err := c.provider(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	c.log.Info("starting viewer", zap.String("source", c.cfg.Posts.Source))
	p := tea.NewProgram(tui.New(ctx, c.cfg.UI, provider, c.log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

// provider returns the post source named by posts.source. The close func
// releases the store, if any.
func (c *cli) provider(ctx context.Context) (post.Provider, func(), error) {
	if c.cfg.Posts.Source != config.SourceSQLite {
		return post.StaticProvider{}, func() {}, nil
	}
	db, err := c.openStore(ctx, true)
	if err != nil {
		return nil, nil, err
	}
	return &service.StoredProvider{Posts: repository.NewPostRepo(db)}, func() { _ = db.Close() }, nil
}

// openStore migrates and opens the sqlite store, seeding the catalog into an
// empty store when seed is set.
func (c *cli) openStore(ctx context.Context, seed bool) (*sql.DB, error) {
	path := c.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if seed {
		if err := database.SeedDefaults(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed defaults: %w", err)
		}
	}
	c.log.Debug("store ready", zap.String("path", path))
	return db, nil
}
