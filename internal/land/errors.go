package land

import "errors"

// ErrInvalidInput marks parcel or simulation inputs the engine refuses to
// score: non-positive areas, prices and holding periods. Callers surface it
// directly; there is nothing transient to retry.
var ErrInvalidInput = errors.New("invalid input")
