// Package user defines the auth user model and the normalization applied to
// sign-up input before it is persisted.
package user
