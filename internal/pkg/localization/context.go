package localization

import (
	"context"
	"time"
)

type zoneKeyType struct{}
type localeKeyType struct{}

var zoneKey = zoneKeyType{}
var localeKey = localeKeyType{}

// WithZone returns a copy of ctx carrying the display zone for the current request
func WithZone(ctx context.Context, zone *time.Location) context.Context {
	return context.WithValue(ctx, zoneKey, zone)
}

// ZoneFromContext returns the display zone stored by WithZone
func ZoneFromContext(ctx context.Context) (*time.Location, bool) {
	v := ctx.Value(zoneKey)
	if v == nil {
		return nil, false
	}
	if zone, ok := v.(*time.Location); ok && zone != nil {
		return zone, true
	}
	return nil, false
}

// WithLocale returns a copy of ctx carrying a locale name such as "fr" or "en_US"
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// LocaleFromContext returns the locale stored by WithLocale
func LocaleFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(localeKey)
	if v == nil {
		return "", false
	}
	if s, ok := v.(string); ok && s != "" {
		return s, true
	}
	return "", false
}
