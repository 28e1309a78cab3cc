package localization

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Logger is the interface for logging localization events
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type noOpLogger struct{}

func (noOpLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noOpLogger) Warn(msg string, keysAndValues ...interface{})  {}

// HTTPMiddleware stores the caller's zone and locale in the request context.
// Zone precedence: token zoneinfo claim, then the zone header. An unknown
// claim zone is skipped like an unsupported claim locale. Only an invalid zone
// header fails the request. Locale precedence: token locale claim, then the
// locale header. Anything left
// unresolved is decided later by the Resolver's fallback.
type HTTPMiddleware struct {
	translators  *Translators
	claims       *ClaimsReader
	zoneHeader   string
	localeHeader string
	onError      OnErrorFunc
	logger       Logger
}

// OnErrorFunc handles a request whose zone cannot be resolved
type OnErrorFunc func(c echo.Context, err error) error

// HTTPMiddlewareOption is a functional option for HTTPMiddleware
type HTTPMiddlewareOption func(*HTTPMiddleware)

// NewHTTPMiddleware creates the localization middleware
func NewHTTPMiddleware(translators *Translators, opts ...HTTPMiddlewareOption) *HTTPMiddleware {
	m := &HTTPMiddleware{
		translators:  translators,
		zoneHeader:   "X-Timezone",
		localeHeader: "Accept-Language",
		onError:      DefaultOnError,
		logger:       noOpLogger{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithClaimsReader enables reading zoneinfo and locale from bearer tokens
func WithClaimsReader(reader *ClaimsReader) HTTPMiddlewareOption {
	return func(m *HTTPMiddleware) {
		m.claims = reader
	}
}

// WithZoneHeader sets the header carrying the zone name
func WithZoneHeader(header string) HTTPMiddlewareOption {
	return func(m *HTTPMiddleware) {
		m.zoneHeader = header
	}
}

// WithLocaleHeader sets the header carrying language preferences
func WithLocaleHeader(header string) HTTPMiddlewareOption {
	return func(m *HTTPMiddleware) {
		m.localeHeader = header
	}
}

// WithOnError sets the handler for unresolvable zones
func WithOnError(fn OnErrorFunc) HTTPMiddlewareOption {
	return func(m *HTTPMiddleware) {
		m.onError = fn
	}
}

// WithMiddlewareLogger sets the middleware logger
func WithMiddlewareLogger(logger Logger) HTTPMiddlewareOption {
	return func(m *HTTPMiddleware) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Middleware returns the echo middleware handler
func (m *HTTPMiddleware) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()

		var claims Claims
		if m.claims != nil {
			if token, ok := bearerToken(req.Header.Get(echo.HeaderAuthorization)); ok {
				read, err := m.claims.Read(token)
				if err != nil {
					// authentication is enforced elsewhere, ignore the claims
					m.logger.Debug("ignoring localization claims", "error", err)
				} else {
					claims = read
				}
			}
		}

		zoneName := req.Header.Get(m.zoneHeader)
		if claims.ZoneInfo != "" {
			if zone, err := LoadZone(claims.ZoneInfo); err != nil {
				m.logger.Warn("ignoring timezone claim", "zone", claims.ZoneInfo, "error", err)
			} else {
				ctx = WithZone(ctx, zone)
				zoneName = ""
			}
		}
		if zoneName != "" {
			zone, err := LoadZone(zoneName)
			if err != nil {
				m.logger.Warn("rejecting request timezone", "zone", zoneName, "error", err)
				return m.onError(c, err)
			}
			ctx = WithZone(ctx, zone)
		}

		if locale, ok := m.resolveLocale(claims.Locale, req.Header.Get(m.localeHeader)); ok {
			ctx = WithLocale(ctx, locale)
		}

		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

func (m *HTTPMiddleware) resolveLocale(claimLocale, header string) (string, bool) {
	if m.translators == nil {
		return "", false
	}
	if claimLocale != "" {
		if trans, ok := m.translators.Get(claimLocale); ok {
			return trans.Locale(), true
		}
	}
	return m.translators.MatchAcceptLanguage(header)
}

// DefaultOnError answers 400 for unknown zones and 500 otherwise
func DefaultOnError(c echo.Context, err error) error {
	if errors.Is(err, ErrUnknownZone) || errors.Is(err, ErrEmptyZone) {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid timezone: %v", err))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
