package repository

import (
	"context"
	"errors"
	"fmt"

	"storyteller-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	getScenarioByKeyQuery = `
		SELECT key, name, description, image, initial_prompt, system_instructions, created_at
		FROM scenarios WHERE key = $1;
	`
	listScenariosQuery = `
		SELECT key, name, description, image, initial_prompt, system_instructions, created_at
		FROM scenarios ORDER BY name;
	`
	upsertScenarioQuery = `
		INSERT INTO scenarios (key, name, description, image, initial_prompt, system_instructions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (key)
		DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			image = EXCLUDED.image,
			initial_prompt = EXCLUDED.initial_prompt,
			system_instructions = EXCLUDED.system_instructions;
	`
)

var _ ScenarioRepository = (*pgScenarioRepository)(nil)

type pgScenarioRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPgScenarioRepository(pool *pgxpool.Pool, logger *zap.Logger) ScenarioRepository {
	return &pgScenarioRepository{pool: pool, logger: logger.Named("PgScenarioRepo")}
}

func (r *pgScenarioRepository) GetByKey(ctx context.Context, key string) (*models.Scenario, error) {
	var scenario models.Scenario
	err := pgxscan.Get(ctx, r.pool, &scenario, getScenarioByKeyQuery, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrScenarioNotFound
		}
		r.logger.Error("Failed to get scenario", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("db error getting scenario %s: %w", key, err)
	}
	return &scenario, nil
}

func (r *pgScenarioRepository) List(ctx context.Context) ([]models.Scenario, error) {
	scenarios := make([]models.Scenario, 0)
	err := pgxscan.Select(ctx, r.pool, &scenarios, listScenariosQuery)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scenarios, nil
		}
		r.logger.Error("Failed to list scenarios", zap.Error(err))
		return nil, fmt.Errorf("db error listing scenarios: %w", err)
	}
	return scenarios, nil
}

func (r *pgScenarioRepository) Upsert(ctx context.Context, scenario *models.Scenario) error {
	_, err := r.pool.Exec(ctx, upsertScenarioQuery,
		scenario.Key, scenario.Name, scenario.Description, scenario.Image,
		scenario.InitialPrompt, scenario.SystemInstructions)
	if err != nil {
		r.logger.Error("Failed to upsert scenario", zap.String("key", scenario.Key), zap.Error(err))
		return fmt.Errorf("db error upserting scenario %s: %w", scenario.Key, err)
	}
	return nil
}
