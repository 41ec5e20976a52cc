package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/blogview/internal/database/repository"
	"github.com/jask/blogview/internal/markdown"
)

func postsCommand(c *cli) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List the posts the viewer would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			provider, closeFn, err := c.provider(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			posts, err := provider.InitialPosts(ctx)
			if err != nil {
				return fmt.Errorf("load posts: %w", err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(posts)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "TITLE", "AUTHOR", "DATE", "READ")
			for _, p := range posts {
				t.Row(p.ID, p.Title, p.Author, p.Date, fmt.Sprintf("%d min", markdown.ReadingTime(p.Content)))
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print posts as JSON")
	cmd.AddCommand(removePostCommand(c))
	return cmd
}

func removePostCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a post from the sqlite store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := c.openStore(ctx, false)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewPostRepo(db)
			p, err := repo.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("find post %s: %w", args[0], err)
			}
			if err := repo.Delete(ctx, p.ID); err != nil {
				return fmt.Errorf("delete post %s: %w", p.ID, err)
			}
			c.log.Info("post removed", zap.String("id", p.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", p.Title)
			return nil
		},
	}
}
