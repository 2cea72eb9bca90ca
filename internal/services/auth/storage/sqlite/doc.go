// Package sqlite provides SQLite-backed auth persistence.
//
// It is the on-disk identity store behind the auth service: users, their
// password credentials, and sessions share one database file.
package sqlite
