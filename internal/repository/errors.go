package repository

import "errors"

// ErrStoreUnavailable is returned when a repository was constructed without
// a reachable Redis client.  Handlers treat it like any other store failure
// and degrade to empty responses.
var ErrStoreUnavailable = errors.New("key-value store unavailable")
