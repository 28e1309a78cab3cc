package tzfmt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"payroll/internal/pkg/localization"
	"payroll/internal/pkg/logger"
	"payroll/internal/pkg/timefmt"

	"go.uber.org/zap"
)

const (
	// OutputText prints one rendered timestamp per line
	OutputText = "text"
	// OutputJSON prints one JSON record per input
	OutputJSON = "json"
)

// Request describes one format invocation
type Request struct {
	// Zone overrides the configured default zone
	Zone string
	// Locale selects month names, e.g. "fr"
	Locale string
	// Output is OutputText or OutputJSON
	Output string
	// Inputs are RFC 3339 timestamps. Empty strings and "null" are absent values.
	Inputs []string
}

// Record is the JSON output for one input
type Record struct {
	Input     string                 `json:"input"`
	Formatted *timefmt.LocalizedTime `json:"formatted,omitempty"`
}

// ZoneInfo describes a validated zone
type ZoneInfo struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Offset       string `json:"offset"`
}

// Runner executes the tzfmt commands
type Runner struct {
	formatter   *timefmt.Formatter
	translators *localization.Translators
	log         *logger.Logger
	now         func() time.Time
}

// NewRunner creates a runner
func NewRunner(formatter *timefmt.Formatter, translators *localization.Translators, log *logger.Logger) *Runner {
	return &Runner{
		formatter:   formatter,
		translators: translators,
		log:         log,
		now:         time.Now,
	}
}

// CheckOutput returns the output format to use, OutputText when empty
func CheckOutput(output string) (string, error) {
	switch output {
	case "":
		return OutputText, nil
	case OutputText, OutputJSON:
		return output, nil
	default:
		return "", fmt.Errorf("unsupported output %q", output)
	}
}

// Format renders every input of req to w
func (r *Runner) Format(ctx context.Context, req Request, w io.Writer) error {
	ctx, err := r.localize(ctx, req.Zone, req.Locale)
	if err != nil {
		return err
	}

	output, err := CheckOutput(req.Output)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	for _, input := range req.Inputs {
		ts, err := parseInput(input)
		if err != nil {
			return err
		}

		field, err := r.formatter.Field(ctx, ts)
		if err != nil {
			return fmt.Errorf("format %q: %w", input, err)
		}

		switch output {
		case OutputJSON:
			if err := encoder.Encode(Record{Input: strings.TrimSpace(input), Formatted: field}); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
		default:
			if field == nil {
				continue
			}
			if _, err := fmt.Fprintln(w, field.Text); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	r.log.Debug("formatted timestamps", zap.Int("count", len(req.Inputs)), zap.String("output", output))
	return nil
}

// Zones validates zone names and describes each at the current instant
func (r *Runner) Zones(names []string) ([]ZoneInfo, error) {
	now := r.now()
	infos := make([]ZoneInfo, 0, len(names))
	for _, name := range names {
		zone, err := localization.LoadZone(name)
		if err != nil {
			return nil, err
		}
		local := now.In(zone)
		infos = append(infos, ZoneInfo{
			Name:         zone.String(),
			Abbreviation: local.Format("MST"),
			Offset:       local.Format("-07:00"),
		})
	}
	return infos, nil
}

// Locales returns the registered locale names
func (r *Runner) Locales() []string {
	return r.translators.Supported()
}

func (r *Runner) localize(ctx context.Context, zoneName, locale string) (context.Context, error) {
	if zoneName != "" {
		zone, err := localization.LoadZone(zoneName)
		if err != nil {
			return nil, err
		}
		ctx = localization.WithZone(ctx, zone)
	}

	if locale != "" {
		trans, ok := r.translators.Get(locale)
		if !ok {
			return nil, fmt.Errorf("%w: %q", localization.ErrUnsupportedLocale, locale)
		}
		ctx = localization.WithLocale(ctx, trans.Locale())
	}

	return ctx, nil
}

// parseInput returns nil for an absent timestamp
func parseInput(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || input == "null" {
		return nil, nil
	}

	ts, err := time.Parse(time.RFC3339Nano, input)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", input, err)
	}
	return &ts, nil
}
