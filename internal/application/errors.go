package application

import "errors"

// ErrDuplicateRun signals that an identical snapshot run was already
// reserved within the idempotency window; the run is skipped, not failed.
var ErrDuplicateRun = errors.New("duplicate snapshot run")
