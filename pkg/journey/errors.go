package journey

import (
	"errors"
	"fmt"
	"time"
)

const dateFormat = "2006-01-02"

// ErrInvalidCriteria marks criteria the upstream source should never have
// let through.
var ErrInvalidCriteria = errors.New("invalid search criteria")

// ProviderError is returned when fetching legs for a candidate date fails.
// The whole run is aborted; there is no partial output.
type ProviderError struct {
	Date time.Time
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("fetching legs for %s: %s", e.Date.Format(dateFormat), e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
