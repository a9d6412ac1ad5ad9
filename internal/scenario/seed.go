package scenario

import (
	"context"
	"fmt"

	"storyteller-server/internal/repository"

	"go.uber.org/zap"
)

// Seed upserts the scenario catalog. Safe to run on every startup; existing
// rows are refreshed in place.
func Seed(ctx context.Context, repo repository.ScenarioRepository, logger *zap.Logger) error {
	for i := range Templates {
		if err := repo.Upsert(ctx, &Templates[i]); err != nil {
			return fmt.Errorf("failed to seed scenario %s: %w", Templates[i].Key, err)
		}
	}
	logger.Info("Scenario catalog seeded", zap.Int("count", len(Templates)))
	return nil
}
