package tzfmt

import (
	"context"

	"payroll/internal/pkg/localization"
	"payroll/internal/pkg/logger"
	"payroll/internal/pkg/timefmt"

	"go.uber.org/fx"
)

// App provides the formatter and its dependencies. The caller supplies
// *config.Config, normally through config.Module.
var App = fx.Options(
	// Infrastructure modules
	logger.Module,
	localization.Module,
	timefmt.Module,

	fx.Provide(
		provideFormatterLogger,
		provideLocalizationLogger,
		NewRunner,
	),

	fx.Invoke(registerHooks),
)

func provideFormatterLogger(log *logger.Logger) timefmt.Logger {
	return log.Named("timefmt").KeyValue()
}

func provideLocalizationLogger(log *logger.Logger) localization.Logger {
	return log.Named("localization").KeyValue()
}

// registerHooks registers lifecycle hooks
func registerHooks(lc fx.Lifecycle, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Debug("tzfmt started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// syncing a console sink fails on some platforms, nothing to recover
			_ = log.Sync()
			return nil
		},
	})
}
