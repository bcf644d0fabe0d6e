// Package portalsdk is a Go client for the Midas client portal API. It covers
// account registration, login, profile management and the KOL directory, and
// keeps the session cookie across requests so callers authenticate once.
package portalsdk
