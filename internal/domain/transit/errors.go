package transit

import "errors"

// Sentinel kinds for configuration contract violations.
var (
	ErrInvalidMaxOrb = errors.New("max orb must be positive")
	ErrUnknownAspect = errors.New("unknown aspect type")
	ErrUnknownBody   = errors.New("unknown transiting body")
)
