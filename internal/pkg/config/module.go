package config

import "go.uber.org/fx"

// Path is an explicit configuration file location
type Path string

// Module exports the config module for FX
var Module = fx.Module("config",
	fx.Provide(provideConfig),
)

// WithPath makes Module read the given file instead of searching the
// standard locations
func WithPath(path string) fx.Option {
	return fx.Supply(Path(path))
}

type configParams struct {
	fx.In

	Path Path `optional:"true"`
}

func provideConfig(params configParams) (*Config, error) {
	return Load(string(params.Path))
}
