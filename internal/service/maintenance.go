package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/blogview/internal/database"
)

// MaintenanceService houses destructive store operations exposed by the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset deletes every stored post. It keeps the schema intact.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM posts"); err != nil {
			return fmt.Errorf("reset table posts: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
