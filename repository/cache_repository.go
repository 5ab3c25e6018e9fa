package repository

import "time"

// CacheRepository is a string key/value store. A zero ttl keeps the value
// until it is overwritten or deleted. Get reports a missing key with
// ok == false and a nil error; err is only set when the store failed.
type CacheRepository interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string, ttl time.Duration) error
	Delete(key string) error
}
