package depthview

import "errors"

// ErrStale indicates a level or critical-path query was attempted while
// the View had not been brought up to date since the last structural
// edit: an unleveled access, a driver invariant violation rather than a
// recoverable condition.
var ErrStale = errors.New("depthview: view is stale, call Update before querying")
