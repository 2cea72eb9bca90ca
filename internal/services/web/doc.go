// Package web owns the browser-facing Atrium application: the localized
// landing page, the sign-in and sign-up forms and the session-gated
// dashboard.
//
// The package wires the session accessor and the credential actions onto a
// backend, composes the feature modules and hosts them over HTTP. Feature
// modules never reach the backend directly; they depend on the interfaces in
// the module package.
package web
