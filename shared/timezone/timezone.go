// Package timezone keeps the application clock. Everything defaults to UTC until Init is called
// with an IANA zone name such as "Asia/Jakarta".
package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

// Init loads name as the application location. An empty name selects UTC.
// On an unknown name the location stays UTC and the error is returned.
func Init(name string) error {
	if name == "" {
		location.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		location.Store(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	location.Store(loc)
	log.Info().Str("timezone", loc.String()).Msg("application timezone initialized")

	return nil
}

// GetLocation returns the application location.
func GetLocation() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application location.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts t to the application location.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}
