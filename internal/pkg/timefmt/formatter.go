// Package timefmt renders timestamps for JSON output in the display zone
// of the current request.
package timefmt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"payroll/internal/pkg/localization"

	"github.com/go-playground/locales"
)

const (
	// Pattern is the display pattern in CLDR notation
	Pattern = "yyyy-MMM-dd hh:mm:ss a z"

	// Layout is Pattern as a Go reference layout
	Layout = "2006-Jan-02 03:04:05 PM MST"

	yearLayout = "2006-"
	restLayout = "-02 03:04:05 PM MST"

	// clockLayout precedes the zone token when the abbreviation is numeric
	clockLayout = "2006-Jan-02 03:04:05 PM "
)

// Formatter converts timestamps to the zone resolved from the context and
// renders them with Pattern. It holds no mutable state.
type Formatter struct {
	resolver    localization.Resolver
	translators *localization.Translators
	logger      Logger
}

// Option is a functional option for Formatter
type Option func(*Formatter)

// WithLogger sets the logger receiving per-call diagnostics
func WithLogger(logger Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithTranslators enables localized month names. Without translators the
// month is always the English abbreviation.
func WithTranslators(translators *localization.Translators) Option {
	return func(f *Formatter) {
		f.translators = translators
	}
}

// New creates a formatter resolving zones with resolver
func New(resolver localization.Resolver, opts ...Option) (*Formatter, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}

	f := &Formatter{
		resolver: resolver,
		logger:   &NoOpLogger{},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Format renders ts in the zone resolved from ctx. A nil ts is not an
// error: it reports false and the caller must write nothing. Resolver
// failures are returned wrapped, there is no default zone here.
func (f *Formatter) Format(ctx context.Context, ts *time.Time) (string, bool, error) {
	if ts == nil {
		f.logger.Debug("timestamp absent, nothing to write")
		return "", false, nil
	}
	f.logger.Debug("formatting timestamp", "input", *ts)

	zone, err := f.resolver.ResolveZone(ctx)
	if err != nil {
		return "", false, fmt.Errorf("timefmt: resolve zone: %w", err)
	}
	if zone == nil {
		return "", false, ErrNilZone
	}
	f.logger.Debug("resolved display zone", "zone", zone.String())

	converted := ts.In(zone)
	f.logger.Debug("converted timestamp", "converted", converted)

	rendered := render(converted, f.translator(ctx))
	f.logger.Debug("rendered timestamp", "output", rendered)

	return rendered, true, nil
}

// FormatTime is Format for a timestamp that is always present
func (f *Formatter) FormatTime(ctx context.Context, ts time.Time) (string, error) {
	rendered, _, err := f.Format(ctx, &ts)
	return rendered, err
}

// Serialize writes the rendered timestamp to w, or nothing when ts is nil
func (f *Formatter) Serialize(ctx context.Context, ts *time.Time, w StringWriter) error {
	rendered, ok, err := f.Format(ctx, ts)
	if err != nil || !ok {
		return err
	}
	return w.WriteString(rendered)
}

// Field renders ts for embedding in a JSON document. It returns nil for a
// nil ts so that an omitempty field is left out.
func (f *Formatter) Field(ctx context.Context, ts *time.Time) (*LocalizedTime, error) {
	rendered, ok, err := f.Format(ctx, ts)
	if err != nil || !ok {
		return nil, err
	}
	return &LocalizedTime{Instant: *ts, Text: rendered}, nil
}

func (f *Formatter) translator(ctx context.Context) locales.Translator {
	if f.translators == nil {
		return nil
	}
	if locale, ok := localization.LocaleFromContext(ctx); ok {
		trans, _ := f.translators.Get(locale)
		return trans
	}
	return f.translators.Default()
}

func render(t time.Time, trans locales.Translator) string {
	if trans == nil {
		return t.Format(Layout)
	}
	month := trans.MonthAbbreviated(t.Month())
	if month == "" {
		return t.Format(Layout)
	}
	return t.Format(yearLayout) + month + t.Format(restLayout)
}

// Parse reads a value rendered with English month names back into an
// instant. Zone abbreviations are interpreted in zone. Zones without a letter
// abbreviation render their offset instead, e.g. +04 or +0545.
func Parse(value string, zone *time.Location) (time.Time, error) {
	if zone == nil {
		zone = time.UTC
	}
	return time.ParseInLocation(parseLayout(value), value, zone)
}

func parseLayout(value string) string {
	i := strings.LastIndexByte(value, ' ')
	if i < 0 {
		return Layout
	}
	abbr := value[i+1:]
	if !strings.HasPrefix(abbr, "+") && !strings.HasPrefix(abbr, "-") {
		return Layout
	}
	if len(abbr) == len("+0700") {
		return clockLayout + "-0700"
	}
	return clockLayout + "-07"
}
