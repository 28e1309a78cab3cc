package localization

import (
	"context"
	"net/http"
	"testing"

	"payroll/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func moduleConfig(defaultZone, secret string) *config.Config {
	return &config.Config{
		Localization: config.LocalizationConfig{
			DefaultZone:      defaultZone,
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "fr"},
			ZoneHeader:       "X-Zone",
			LocaleHeader:     "X-Locale",
		},
		JWT: config.JWTConfig{Secret: secret},
	}
}

func TestModule_Resolver(t *testing.T) {
	var resolver Resolver
	app := fxtest.New(t, fx.Supply(moduleConfig("Asia/Tokyo", "")), Module, fx.Populate(&resolver))
	app.RequireStart()
	defer app.RequireStop()

	zone, err := resolver.ResolveZone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", zone.String())
}

func TestModule_ResolverWithoutDefault(t *testing.T) {
	var resolver Resolver
	app := fxtest.New(t, fx.Supply(moduleConfig("", "")), Module, fx.Populate(&resolver))
	app.RequireStart()
	defer app.RequireStop()

	_, err := resolver.ResolveZone(context.Background())
	assert.ErrorIs(t, err, ErrZoneUnavailable)
}

func TestModule_Middleware(t *testing.T) {
	var middleware *HTTPMiddleware
	app := fxtest.New(t, fx.Supply(moduleConfig("UTC", testSecret)), Module, fx.Populate(&middleware))
	app.RequireStart()
	defer app.RequireStop()

	e := echo.New()
	e.Use(middleware.Middleware)
	e.GET("/payslips", func(c echo.Context) error {
		var seen seenLocalization
		if zone, ok := ZoneFromContext(c.Request().Context()); ok {
			seen.Zone = zone.String()
		}
		if locale, ok := LocaleFromContext(c.Request().Context()); ok {
			seen.Locale = locale
		}
		return c.JSON(http.StatusOK, seen)
	})

	rec, seen := serve(t, e, map[string]string{"X-Zone": "Europe/Paris", "X-Locale": "fr"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seenLocalization{Zone: "Europe/Paris", Locale: "fr"}, seen)

	token := signToken(t, testSecret, jwt.MapClaims{ClaimZoneInfo: "America/New_York"})
	rec, seen = serve(t, e, map[string]string{"Authorization": "Bearer " + token, "X-Zone": "Europe/Paris"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "America/New_York", seen.Zone)
}

func TestModule_InvalidLocaleConfig(t *testing.T) {
	cfg := moduleConfig("UTC", "")
	cfg.Localization.SupportedLocales = []string{"en", "klingon"}

	_, err := NewTranslatorsFromConfig(cfg)
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}
