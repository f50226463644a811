// Package cli provides the interactive snoozer command-line client.
//
// It wires configuration, the local session database, API services, and an
// interactive REPL. Typical flow: resume a saved session if one exists, fetch
// the story collection, and execute user commands.
//
// Key features:
//   - Signup / Login / Logout with a persisted session
//   - List the story collection, submit and delete stories
//   - Mark and unmark favorites, list favorites and own stories
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
