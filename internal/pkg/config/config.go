package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Load reads configuration from file, environment variables, and defaults.
// The file is path, or config.yaml in the standard directories when path
// is empty. A missing default file is not an error, a missing explicit
// file is.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Enable environment variable overrides, e.g. APP_LOCALIZATION_DEFAULT_ZONE
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks struct tags and the cross-field rules tags cannot express
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	defaultLocale := normalizeLocale(cfg.Localization.DefaultLocale)
	for _, locale := range cfg.Localization.SupportedLocales {
		if normalizeLocale(locale) == defaultLocale {
			return nil
		}
	}

	return fmt.Errorf("default locale %q is not in supported locales %v",
		cfg.Localization.DefaultLocale, cfg.Localization.SupportedLocales)
}

// normalizeLocale folds BCP 47 separators into CLDR ones, en-US to en_US
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output_path", "stderr")

	// Localization defaults
	v.SetDefault("localization.default_zone", "UTC")
	v.SetDefault("localization.default_locale", "en")
	v.SetDefault("localization.supported_locales", []string{"en", "en_US", "en_GB", "fr", "de", "es", "pt"})
	v.SetDefault("localization.zone_header", "X-Timezone")
	v.SetDefault("localization.locale_header", "Accept-Language")

	// JWT defaults
	v.SetDefault("jwt.secret", "")
}
