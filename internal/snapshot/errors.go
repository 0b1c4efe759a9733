package snapshot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDataUnavailable reports a required snapshot table that is missing or
// malformed. There is no retry logic; the caller surfaces the failure.
var ErrDataUnavailable = errors.New("snapshot data unavailable")

// SchemaError reports a snapshot table whose header does not match the
// schema declared in the manifest.
type SchemaError struct {
	Table string
	Want  []string
	Got   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q: schema mismatch: want columns [%s], got [%s]",
		e.Table, strings.Join(e.Want, ", "), strings.Join(e.Got, ", "))
}

func unavailable(table string, err error) error {
	return fmt.Errorf("table %q: %w: %w", table, ErrDataUnavailable, err)
}
