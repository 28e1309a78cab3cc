package timefmt

import (
	"payroll/internal/pkg/localization"

	"go.uber.org/fx"
)

// Module exports the formatter module for FX
var Module = fx.Module("timefmt",
	fx.Provide(NewFormatterFromParams),
)

// FormatterParams holds dependencies for creating a formatter
type FormatterParams struct {
	fx.In

	Resolver    localization.Resolver
	Translators *localization.Translators `optional:"true"`
	Logger      Logger                    `optional:"true"`
}

// NewFormatterFromParams creates a formatter from the FX graph
func NewFormatterFromParams(params FormatterParams) (*Formatter, error) {
	opts := []Option{}

	if params.Translators != nil {
		opts = append(opts, WithTranslators(params.Translators))
	}

	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}

	return New(params.Resolver, opts...)
}
