package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "UTC", cfg.Localization.DefaultZone)
	assert.Equal(t, "en", cfg.Localization.DefaultLocale)
	assert.Contains(t, cfg.Localization.SupportedLocales, "fr")
	assert.Equal(t, "X-Timezone", cfg.Localization.ZoneHeader)
	assert.Equal(t, "Accept-Language", cfg.Localization.LocaleHeader)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
  format: console
localization:
  default_zone: America/New_York
  default_locale: fr
  supported_locales: [en, fr]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "America/New_York", cfg.Localization.DefaultZone)
	assert.Equal(t, "fr", cfg.Localization.DefaultLocale)
	assert.Equal(t, []string{"en", "fr"}, cfg.Localization.SupportedLocales)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_LOCALIZATION_DEFAULT_ZONE", "Europe/Paris")
	t.Setenv("APP_LOCALIZATION_SUPPORTED_LOCALES", "en,de")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Europe/Paris", cfg.Localization.DefaultZone)
	assert.Equal(t, []string{"en", "de"}, cfg.Localization.SupportedLocales)
}

func TestLoad_EmptyDefaultZoneAllowed(t *testing.T) {
	path := writeConfig(t, `
localization:
  default_zone: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Localization.DefaultZone)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown zone",
			content: `
localization:
  default_zone: Mars/Olympus_Mons
`,
		},
		{
			name: "default locale not supported",
			content: `
localization:
  default_locale: de
  supported_locales: [en, fr]
`,
		},
		{
			name: "bad log level",
			content: `
logger:
  level: verbose
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestValidate_LocaleSeparators(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
localization:
  default_locale: en-US
  supported_locales: [en_US, fr]
`))
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.Localization.DefaultLocale)

	cfg.Localization.DefaultLocale = "fr_FR"
	assert.Error(t, Validate(cfg))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestModule_WithPath(t *testing.T) {
	path := writeConfig(t, `
localization:
  default_zone: Asia/Tokyo
`)

	cfg, err := provideConfig(configParams{Path: Path(path)})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.Localization.DefaultZone)
}
