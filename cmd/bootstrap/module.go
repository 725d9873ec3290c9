package bootstrap

import (
	"timewise/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.PersistenceModule,
	components.QueueModule,
	components.UseCaseModule,
	components.HandlerModule,
)
