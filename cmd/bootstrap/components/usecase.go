package components

import (
	"timewise/internal/infra/export"
	"timewise/internal/pkg/clock"
	"timewise/internal/usecase/commands"
	"timewise/internal/usecase/queries"
	"timewise/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewPolicyBootstrapper,
	fx.Annotate(
		export.NewXLSXExporter,
		fx.As(new(queries.BookingExporter)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPolicyCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPolicyQueries,
		queries.NewAvailabilityQueries,
		queries.NewExportQueries,
	),
)
