package band

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrNoScorer = errors.New("no member scorer configured")
)
