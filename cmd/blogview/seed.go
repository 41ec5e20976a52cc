package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/blogview/internal/database"
	"github.com/jask/blogview/internal/post"
	"github.com/jask/blogview/internal/service"
)

func seedCommand(c *cli) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in posts into the sqlite store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := c.openStore(ctx, false)
			if err != nil {
				return err
			}
			defer db.Close()

			if reset {
				if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
					return fmt.Errorf("reset store: %w", err)
				}
				c.log.Info("store reset")
			}
			posts := post.Catalog()
			if err := database.SeedPosts(ctx, db, posts); err != nil {
				return fmt.Errorf("seed posts: %w", err)
			}
			c.log.Info("store seeded", zap.Int("count", len(posts)))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts into %s\n", len(posts), c.cfg.Database.Path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete every stored post first")
	return cmd
}
