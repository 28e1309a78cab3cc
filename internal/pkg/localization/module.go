package localization

import (
	"fmt"
	"time"

	"payroll/internal/pkg/config"

	"go.uber.org/fx"
)

// Module exports the localization module for FX
var Module = fx.Module("localization",
	fx.Provide(
		NewTranslatorsFromConfig,
		NewResolverFromConfig,
		NewHTTPMiddlewareFromConfig,
	),
)

// NewTranslatorsFromConfig registers the configured locales
func NewTranslatorsFromConfig(cfg *config.Config) (*Translators, error) {
	translators, err := NewTranslators(cfg.Localization.DefaultLocale, cfg.Localization.SupportedLocales...)
	if err != nil {
		return nil, fmt.Errorf("invalid localization config: %w", err)
	}
	return translators, nil
}

// NewResolverFromConfig creates a context resolver falling back to the
// configured default zone. An empty default zone leaves no fallback.
func NewResolverFromConfig(cfg *config.Config) (Resolver, error) {
	var fallback *time.Location
	if cfg.Localization.DefaultZone != "" {
		zone, err := LoadZone(cfg.Localization.DefaultZone)
		if err != nil {
			return nil, fmt.Errorf("invalid default zone: %w", err)
		}
		fallback = zone
	}
	return NewContextResolver(fallback), nil
}

// MiddlewareParams holds dependencies for creating the HTTP middleware
type MiddlewareParams struct {
	fx.In

	Config      *config.Config
	Translators *Translators
	Logger      Logger `optional:"true"`
}

// NewHTTPMiddlewareFromConfig creates the echo middleware from configuration.
// HTTP servers embedding Module register its Middleware on their echo instance.
func NewHTTPMiddlewareFromConfig(params MiddlewareParams) *HTTPMiddleware {
	opts := []HTTPMiddlewareOption{
		WithZoneHeader(params.Config.Localization.ZoneHeader),
		WithLocaleHeader(params.Config.Localization.LocaleHeader),
		WithMiddlewareLogger(params.Logger),
	}

	if params.Config.JWT.Secret != "" {
		opts = append(opts, WithClaimsReader(NewClaimsReader(params.Config.JWT.Secret)))
	}

	return NewHTTPMiddleware(params.Translators, opts...)
}
