package weightage

import "errors"

// Sentinel kinds for configuration contract violations. These indicate a
// broken upstream chart, never bad user data.
var (
	ErrHouseOutOfRange = errors.New("natal house out of range 1-12")
	ErrUnknownBody     = errors.New("unknown natal body")
)
