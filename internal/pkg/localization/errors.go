package localization

import "errors"

var (
	// ErrZoneUnavailable indicates the context carries no zone and no fallback is configured
	ErrZoneUnavailable = errors.New("localization: no timezone in context and no fallback configured")

	// ErrEmptyZone indicates an empty zone name was supplied
	ErrEmptyZone = errors.New("localization: empty timezone name")

	// ErrUnknownZone indicates the zone name is not a known IANA identifier
	ErrUnknownZone = errors.New("localization: unknown timezone")

	// ErrUnsupportedLocale indicates no translator is registered for a locale
	ErrUnsupportedLocale = errors.New("localization: unsupported locale")

	// ErrInvalidToken indicates a bearer token could not be verified
	ErrInvalidToken = errors.New("localization: invalid token")
)
