package components

import (
	"context"
	"log/slog"

	"timewise/internal/infra/db"
	"timewise/internal/infra/pgquery"
	"timewise/internal/infra/repository"
	"timewise/internal/infra/sheets"
	"timewise/internal/infra/uow"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/shared"

	"go.uber.org/fx"
)

// Storage is the pair of adapters for the configured backend.
type Storage struct {
	Settings shared.SettingsStore
	Ledger   shared.BookingLedger
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStorage,
		func(s Storage) shared.SettingsStore { return s.Settings },
		func(s Storage) shared.BookingLedger { return s.Ledger },
	),
)

// NewStorage only opens the connection the selected backend needs.
func NewStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return newPostgresStorage(lc, cfg, logger)
	case config.BackendSheets:
		return newSheetsStorage(cfg, logger)
	default:
		return Storage{}, errs.Configuration("unknown storage backend " + cfg.Storage.Backend)
	}
}

func newPostgresStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Storage, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Storage{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	if cfg.Storage.RunMigrations {
		if err := db.RunMigrations(pool, logger); err != nil {
			cleanup()
			return Storage{}, err
		}
	}

	queries := pgquery.New(cfg.Storage.SettingsTable)
	tx := uow.NewPostgresUoW(pool, logger)

	logger.Info("storage backend ready", "backend", config.BackendPostgres, "settings_table", cfg.Storage.SettingsTable)
	return Storage{
		Settings: repository.NewSettingsRepository(queries, pool, tx, logger),
		Ledger:   repository.NewBookingRepository(queries, pool, logger),
	}, nil
}

func newSheetsStorage(cfg config.Config, logger *slog.Logger) (Storage, error) {
	// the client keeps this context for token refreshes
	api, err := sheets.NewValuesAPI(context.Background(), cfg.Sheets)
	if err != nil {
		return Storage{}, err
	}

	logger.Info("storage backend ready", "backend", config.BackendSheets,
		"bookings_sheet", cfg.Sheets.BookingsSheet, "settings_sheet", cfg.Sheets.SettingsSheet)
	return Storage{
		Settings: sheets.NewSettingsStore(api, cfg.Sheets.SpreadsheetID, cfg.Sheets.SettingsSheet, logger),
		Ledger:   sheets.NewLedger(api, cfg.Sheets.SpreadsheetID, cfg.Sheets.BookingsSheet, logger),
	}, nil
}
