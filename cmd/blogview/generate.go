package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/blogview/internal/config"
	"github.com/jask/blogview/internal/database/repository"
	"github.com/jask/blogview/internal/llm"
	"github.com/jask/blogview/internal/secrets"
	"github.com/jask/blogview/internal/service"
)

func generateCommand(c *cli) *cobra.Command {
	var (
		count     int
		theme     string
		saveKey   string
		forgetKey bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ask Gemini for new posts and add them to the sqlite store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if forgetKey {
				store, err := secrets.Default()
				if err != nil {
					return err
				}
				if err := store.Delete(c.cfg.LLM.Provider); err != nil {
					return fmt.Errorf("forget key: %w", err)
				}
				fmt.Fprintf(out, "forgot %s key\n", c.cfg.LLM.Provider)
				if theme == "" {
					return nil
				}
			}
			if saveKey != "" {
				store, err := secrets.Default()
				if err != nil {
					return err
				}
				if err := store.Put(c.cfg.LLM.Provider, saveKey); err != nil {
					return fmt.Errorf("save key: %w", err)
				}
				fmt.Fprintf(out, "saved %s key\n", c.cfg.LLM.Provider)
				if theme == "" {
					return nil
				}
			}

			req := llm.GenerateRequest{Count: count, Theme: theme}
			apiKey := resolveAPIKey(c.cfg)
			if apiKey == "" {
				return fmt.Errorf("no API key: set %s or run generate --save-key", c.cfg.LLM.APIKeyEnv)
			}
			gen, err := llm.NewGeminiGenerator(ctx, apiKey, c.cfg.LLM.Model)
			if err != nil {
				return err
			}

			db, err := c.openStore(ctx, true)
			if err != nil {
				return err
			}
			defer db.Close()

			author := &service.AuthorService{
				Posts:     repository.NewPostRepo(db),
				Generator: gen,
				Author:    c.cfg.LLM.Author,
			}
			res, err := author.Generate(ctx, req)
			for _, p := range res.Stored {
				fmt.Fprintf(out, "added %q\n", p.Title)
			}
			if err != nil {
				c.log.Error("generate posts", zap.String("theme", theme), zap.Error(err))
				return err
			}
			c.log.Info("posts generated", zap.String("theme", theme), zap.Int("count", len(res.Stored)))
			if c.cfg.Posts.Source != config.SourceSQLite {
				fmt.Fprintln(out, "note: set posts.source = \"sqlite\" to read generated posts")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of posts to request (1-10)")
	cmd.Flags().StringVar(&theme, "theme", "", "what the posts should be about")
	cmd.Flags().StringVar(&saveKey, "save-key", "", "store an API key for the configured provider")
	cmd.Flags().BoolVar(&forgetKey, "forget-key", false, "remove the stored API key for the configured provider")
	cmd.MarkFlagsMutuallyExclusive("save-key", "forget-key")
	return cmd
}

// resolveAPIKey prefers the environment, then the secrets store, then the
// config file.
func resolveAPIKey(cfg config.Config) string {
	provider := strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	env := strings.TrimSpace(cfg.LLM.APIKeyEnv)
	if env == "" {
		env = "GEMINI_API_KEY"
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if store, err := secrets.Default(); err == nil {
		k, err := store.Get(provider)
		if err == nil {
			return k
		}
		if !errors.Is(err, secrets.ErrNoKey) {
			fmt.Fprintf(os.Stderr, "warn: read stored key: %v\n", err)
		}
	}
	return strings.TrimSpace(cfg.LLM.APIKey)
}
