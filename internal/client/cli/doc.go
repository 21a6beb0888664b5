// Package cli implements the interactive shell of the life-planning
// client.
//
// The shell has two command sets selected by the session state:
//
//	signed out:  login, register, reset, code, help, exit
//	signed in:   list, add, edit, profile, logout, help, exit
//
// Signing in is a two-step email flow: a mode command (login, register
// or reset) collects the form and requests a one-time code, and the
// code command completes the exchange. The resulting bearer token is
// persisted in a local sqlite database, so a restarted shell comes up
// signed in until the server rejects the token.
package cli
