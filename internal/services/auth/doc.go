// Package auth owns user identity and email/password sessions.
//
// The web service reaches it only through narrow interfaces, so the same
// contracts could be served out of process later.
//
// Subpackages:
//   - app: sign-up, sign-in, sign-out, session lookup and the session janitor
//   - password: bcrypt hashing
//   - sessiontoken: signed session cookie tokens
//   - storage: persistence contracts, with sqlite and redis implementations
//   - user: user model and sign-up normalization
package auth
