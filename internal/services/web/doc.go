// Package web hosts the browser-facing translation review service.
//
// It composes the public source pages, the authenticated source edit and
// matrix tools, and the sign-in surface into one HTTP handler backed by the
// translation catalog store.
package web
