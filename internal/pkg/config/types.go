package config

// Config holds the application configuration
type Config struct {
	Logger       LoggerConfig       `mapstructure:"logger" validate:"required"`
	Localization LocalizationConfig `mapstructure:"localization" validate:"required"`
	JWT          JWTConfig          `mapstructure:"jwt"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"required,oneof=json console"`
	OutputPath string `mapstructure:"output_path" validate:"required"`
}

// LocalizationConfig holds the defaults used when a request or command
// carries no localization of its own
type LocalizationConfig struct {
	// DefaultZone is the IANA zone used when the context has none.
	// Leave empty to make a missing zone an error.
	DefaultZone string `mapstructure:"default_zone" validate:"omitempty,timezone"`

	// DefaultLocale selects month names when the context has no locale
	DefaultLocale string `mapstructure:"default_locale" validate:"required"`

	// SupportedLocales restricts which translators are registered
	SupportedLocales []string `mapstructure:"supported_locales" validate:"required,min=1,dive,required"`

	// ZoneHeader is the request header carrying an IANA zone name
	ZoneHeader string `mapstructure:"zone_header" validate:"required"`

	// LocaleHeader is the request header carrying language preferences
	LocaleHeader string `mapstructure:"locale_header" validate:"required"`
}

// JWTConfig holds JWT configuration. Only the signing secret is needed,
// tokens are read for their zoneinfo and locale claims.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}
