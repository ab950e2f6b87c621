// Package shell implements the interactive command shell: a fixed registry
// mapping typed tokens to actions, and the loop that reads, resolves,
// executes, and persists.
package shell

import (
	"errors"
	"fmt"

	"github.com/bnema/instagram-query-cli/internal/domain"
)

var errQuit = errors.New("quit requested")

type LocalFunc func(l *Loop) error

// Command is a named, zero-argument action bound at registry construction.
// Exactly one of Local and Remote is set: local commands act in-process,
// remote commands describe the single GET to issue. Only remote commands
// produce a persistable Result.
type Command struct {
	Name    string
	Aliases []string
	Summary string
	Local   LocalFunc
	Remote  *domain.Query
}

func (c *Command) IsRemote() bool {
	return c.Remote != nil
}

// Registry maps case-sensitive command tokens to actions. Lookup is exact
// string match; aliases work only when explicitly registered.
type Registry struct {
	commands map[string]*Command
	order    []*Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds a command under its name and every alias. It panics on a
// duplicate token: the table is fixed at startup, so a collision is a
// programming error.
func (r *Registry) Register(cmd *Command) {
	tokens := append([]string{cmd.Name}, cmd.Aliases...)
	for _, token := range tokens {
		if _, exists := r.commands[token]; exists {
			panic(fmt.Sprintf("command %s already registered", token))
		}
		r.commands[token] = cmd
	}

	r.order = append(r.order, cmd)
}

func (r *Registry) Resolve(token string) (*Command, bool) {
	cmd, ok := r.commands[token]
	return cmd, ok
}

// Commands returns the registered commands in registration order, one entry
// per command regardless of aliases.
func (r *Registry) Commands() []*Command {
	return r.order
}

// DefaultRegistry builds the fixed command table of the shell.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(&Command{
		Name:    "help",
		Aliases: []string{"list"},
		Summary: "print this command table",
		Local: func(l *Loop) error {
			_, err := fmt.Fprintln(l.out, l.renderHelp(l.registry.Commands()))
			return err
		},
	})

	r.Register(&Command{
		Name:    "quit",
		Aliases: []string{"exit"},
		Summary: "leave the shell",
		Local: func(l *Loop) error {
			return errQuit
		},
	})

	r.Register(&Command{
		Name:    "info",
		Summary: "account metadata: username, media/follower/following counts",
		Remote: &domain.Query{
			Name:   "info",
			Fields: "id,username,account_type,media_count,followers_count,follows_count",
		},
	})

	r.Register(&Command{
		Name:    "followers",
		Summary: "accounts following the target",
		Remote: &domain.Query{
			Name:   "followers",
			Edge:   "followers",
			Fields: "id,username",
		},
	})

	r.Register(&Command{
		Name:    "follows",
		Summary: "accounts the target follows",
		Remote: &domain.Query{
			Name:   "follows",
			Edge:   "follows",
			Fields: "id,username",
		},
	})

	r.Register(&Command{
		Name:    "photos",
		Aliases: []string{"media"},
		Summary: "recent media with caption, type and URL",
		Remote: &domain.Query{
			Name:   "photos",
			Edge:   "media",
			Fields: "id,caption,media_type,media_url,permalink,timestamp",
		},
	})

	return r
}
