package repository

import (
	"context"
	"log/slog"
	"slices"

	"timewise/internal/domain/availability"
	"timewise/internal/infra"
	"timewise/internal/infra/db"
	"timewise/internal/infra/pgquery"
	"timewise/internal/infra/uow"
)

type SettingsQueries interface {
	CreateSettingsTable(ctx context.Context, dbtx db.DBTX) error
	ListSettings(ctx context.Context, dbtx db.DBTX) ([]pgquery.Setting, error)
	UpsertSetting(ctx context.Context, dbtx db.DBTX, arg pgquery.UpsertSettingParams) error
}

// SettingsRepository keeps the policy fields as key/value rows in one table.
type SettingsRepository struct {
	queries SettingsQueries
	db      db.DBTX
	tx      uow.TxRunner
	logger  *slog.Logger
}

func NewSettingsRepository(queries SettingsQueries, dbtx db.DBTX, tx uow.TxRunner, logger *slog.Logger) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      dbtx,
		tx:      tx,
		logger:  logger,
	}
}

func (r *SettingsRepository) ReadFields(ctx context.Context) (availability.Fields, error) {
	rows, err := r.queries.ListSettings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, classifyPgError(err), "failed to read settings", err)
	}

	fields := make(availability.Fields, len(rows))
	for _, row := range rows {
		fields[row.Key] = row.Value
	}
	return fields, nil
}

// WriteFields upserts the given keys in one transaction; other keys are left alone.
func (r *SettingsRepository) WriteFields(ctx context.Context, fields availability.Fields) error {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	err := r.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, k := range keys {
			params := pgquery.UpsertSettingParams{Key: k, Value: fields[k]}
			if err := r.queries.UpsertSetting(ctx, tx, params); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, classifyPgError(err), "failed to write settings", err)
	}
	return nil
}

func (r *SettingsRepository) CreateContainer(ctx context.Context) error {
	if err := r.queries.CreateSettingsTable(ctx, r.db); err != nil {
		return infra.WrapRepoErr(r.logger, classifyPgError(err), "failed to create settings table", err)
	}
	return nil
}
