package timefmt

import (
	"encoding/json"
	"io"
	"time"
)

// StringWriter is the write-string capability of an output stream
type StringWriter interface {
	WriteString(s string) error
}

// JSONStringWriter writes each string as a JSON string literal
type JSONStringWriter struct {
	w io.Writer
}

// NewJSONStringWriter creates a StringWriter emitting JSON strings to w
func NewJSONStringWriter(w io.Writer) *JSONStringWriter {
	return &JSONStringWriter{w: w}
}

// WriteString implements StringWriter
func (j *JSONStringWriter) WriteString(s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = j.w.Write(data)
	return err
}

// LocalizedTime is a timestamp already rendered for a specific zone and locale
type LocalizedTime struct {
	Instant time.Time
	Text    string
}

// String returns the rendered text
func (l LocalizedTime) String() string {
	return l.Text
}

// MarshalJSON encodes the rendered text as a JSON string
func (l LocalizedTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Text)
}
