package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/instagram-query-cli/internal/application"
	"github.com/bnema/instagram-query-cli/internal/domain"
)

// Farewell is printed on every orderly exit: quit/exit, end of input, and
// operator interrupt.
const Farewell = "Goodbye."

type Config struct {
	Session      *domain.Session
	Registry     *Registry
	Service      *application.Service
	RenderResult func(domain.Result) (string, error)
	RenderHelp   func([]*Command) string
	In           io.Reader
	Out          io.Writer
	Err          io.Writer

	// Spinner shows a fetch spinner on Err while a remote command is in
	// flight. Off in batch mode.
	Spinner bool
}

// Loop drives the read-resolve-execute-persist cycle. One command executes
// per iteration; a Result, if produced, is persisted before the next
// iteration begins.
type Loop struct {
	session      *domain.Session
	registry     *Registry
	service      *application.Service
	renderResult func(domain.Result) (string, error)
	renderHelp   func([]*Command) string
	in           io.Reader
	out          io.Writer
	errOut       io.Writer
	spinner      bool
}

func New(cfg Config) *Loop {
	return &Loop{
		session:      cfg.Session,
		registry:     cfg.Registry,
		service:      cfg.Service,
		renderResult: cfg.RenderResult,
		renderHelp:   cfg.RenderHelp,
		in:           cfg.In,
		out:          cfg.Out,
		errOut:       cfg.Err,
		spinner:      cfg.Spinner,
	}
}

// Run prompts for one command per iteration until quit/exit or end of input.
// Unknown tokens are reported and the loop continues; remote faults are
// reported and the loop continues.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.in)

	for {
		fmt.Fprintf(l.out, "%s> ", l.session.Account)

		if !scanner.Scan() {
			break
		}

		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}

		if l.applyToggle(token) {
			continue
		}

		cmd, ok := l.registry.Resolve(token)
		if !ok {
			fmt.Fprintf(l.errOut, "%v %q (try \"help\")\n", domain.ErrUnknownCommand, token)
			continue
		}

		if !cmd.IsRemote() {
			err := cmd.Local(l)
			if err == nil {
				continue
			}
			if errors.Is(err, errQuit) {
				fmt.Fprintln(l.out, Farewell)
				return nil
			}
			return err
		}

		if err := l.execRemote(ctx, cmd); err != nil {
			fmt.Fprintf(l.errOut, "%s: %v\n", cmd.Name, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command input: %w", err)
	}

	// End of input behaves like quit.
	fmt.Fprintln(l.out, Farewell)
	return nil
}

// RunOnce executes a single fixed command token and returns: batch mode is
// single-shot.
func (l *Loop) RunOnce(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)

	cmd, ok := l.registry.Resolve(token)
	if !ok {
		return fmt.Errorf("%w %q", domain.ErrUnknownCommand, token)
	}

	if !cmd.IsRemote() {
		err := cmd.Local(l)
		if errors.Is(err, errQuit) {
			fmt.Fprintln(l.out, Farewell)
			return nil
		}
		return err
	}

	return l.execRemote(ctx, cmd)
}

// applyToggle intercepts the four reserved toggle tokens before registry
// lookup. Anything else is left for the registry.
func (l *Loop) applyToggle(token string) bool {
	switch token {
	case "FILE=y":
		l.session.SaveText = true
	case "FILE=n":
		l.session.SaveText = false
	case "JSON=y":
		l.session.SaveJSON = true
	case "JSON=n":
		l.session.SaveJSON = false
	default:
		return false
	}

	fmt.Fprintf(l.errOut, "file output %s, json output %s\n",
		onOff(l.session.SaveText), onOff(l.session.SaveJSON))
	return true
}

func (l *Loop) execRemote(ctx context.Context, cmd *Command) error {
	var result domain.Result
	fetch := func(ctx context.Context) error {
		var err error
		result, err = l.service.Query(ctx, *l.session, *cmd.Remote)
		return err
	}

	if l.spinner {
		label := fmt.Sprintf("Fetching %s for %s...", cmd.Name, l.session.Account)
		if err := runFetchSpinner(ctx, l.errOut, label, fetch); err != nil {
			return err
		}
	} else if err := fetch(ctx); err != nil {
		return err
	}

	rendered, err := l.renderResult(result)
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	fmt.Fprintln(l.out, rendered)

	paths, err := l.service.Persist(*l.session, result)
	for _, path := range paths {
		fmt.Fprintf(l.out, "saved %s\n", path)
	}

	return err
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
