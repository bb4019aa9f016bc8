package session

import "errors"

// Storage keys used by the session store. The values mirror the keys the
// mobile client historically wrote, so a migrated data directory keeps
// working.
const (
	KeyUser  = "@Auth:user"
	KeyToken = "@Auth:token"
)

// ErrKeyNotFound is returned by Storage.Get for absent keys.
var ErrKeyNotFound = errors.New("session: key not found")

// Storage persists session keys as opaque strings. Implementations must
// treat Set as a full overwrite; the session store always writes whole
// values, never partial fields.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	// Clear removes every session key.
	Clear() error
}
