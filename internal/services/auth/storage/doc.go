// Package storage defines persistence contracts for users, password
// credentials, and sessions.
//
// The auth service depends on these interfaces rather than on a schema so
// the SQLite store and the Redis cache can be composed freely.
package storage
