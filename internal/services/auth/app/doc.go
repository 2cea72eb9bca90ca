// Package app implements the email/password authentication service.
//
// It owns sign-up, sign-in, sign-out and session lookup over the storage
// contracts, and runs the janitor that purges dead sessions.
package app
