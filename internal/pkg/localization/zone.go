package localization

import (
	"fmt"
	"strings"
	"sync"
	"time"

	// zone lookups must not depend on the host's zoneinfo
	_ "time/tzdata"
)

var zoneCache sync.Map

// LoadZone returns the location for an IANA zone name. Results are cached
// for the life of the process. "Local" is rejected because its meaning
// depends on the host.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyZone
	}

	if cached, ok := zoneCache.Load(name); ok {
		return cached.(*time.Location), nil
	}

	if strings.EqualFold(name, "local") {
		return nil, fmt.Errorf("%w %q", ErrUnknownZone, name)
	}

	zone, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownZone, name, err)
	}

	zoneCache.Store(name, zone)
	return zone, nil
}
