package domain

import "time"

// Session is the single mutable value of a process run: the account being
// queried, the credential sent with every remote request, and the two
// independent output-persistence toggles. It is created once at startup and
// passed explicitly into the dispatch loop and every remote invocation.
type Session struct {
	Account string
	Token   string
	BaseURL string

	SaveText bool
	SaveJSON bool
}

// Query describes one remote command: a GET against the account node itself
// (empty Edge) or one of its edges, with an optional fields selector.
type Query struct {
	Name   string
	Edge   string
	Fields string
}

// StoredSession is a previously used account/credential pair kept on disk so
// the token positional can be omitted on later runs.
type StoredSession struct {
	Account string
	Token   string
	SavedAt time.Time
}
