package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	filesink "github.com/bnema/instagram-query-cli/internal/adapters/sink/file"
	"github.com/bnema/instagram-query-cli/internal/application"
	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/bnema/instagram-query-cli/internal/shell"
	"github.com/bnema/instagram-query-cli/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	saveText     bool
	saveJSON     bool
	command      string
	output       string
	clearCookies bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "igq <account> [access-token]",
		Short:         "igq: interactive Instagram account query shell",
		Long:          "igq queries a Graph-style social media API for one account: profile info, followers, follows and recent media. Commands run from an interactive shell or as a single batch invocation, and every result can be persisted as text and JSON files.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.saveText, "file", "f", false, "persist results as {account}_{command}.txt")
	flags.BoolVarP(&opts.saveJSON, "json", "j", false, "persist results as {account}_{command}.json")
	flags.StringVarP(&opts.command, "command", "c", "", "run a single command instead of the interactive shell")
	flags.StringVar(&opts.output, "output", ".", "directory for persisted output files")
	flags.BoolVarP(&opts.clearCookies, "cookies", "C", false, "clear stored sessions before running")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runRoot(cmd, app, args, opts)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionsCmd(app),
	)

	return rootCmd
}

func runRoot(cmd *cobra.Command, app *app, args []string, opts rootOptions) error {
	ctx := cmd.Context()

	// Operator interrupt exits immediately with status 0, bypassing any
	// pending persistence.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), shell.Farewell)
		os.Exit(0)
	}()

	service := application.NewService(app.graph, app.sessions, filesink.NewSink(opts.output), app.clock)

	if opts.clearCookies {
		if err := service.ClearSessions(ctx); err != nil {
			return err
		}
	}

	account := args[0]
	credential := ""
	if len(args) == 2 {
		credential = args[1]
	}

	token, err := service.ResolveCredential(ctx, account, credential)
	if err != nil {
		return err
	}

	session := &domain.Session{
		Account:  account,
		Token:    token,
		BaseURL:  app.baseURL,
		SaveText: opts.saveText,
		SaveJSON: opts.saveJSON,
	}

	batch := opts.command != ""

	loop := shell.New(shell.Config{
		Session:      session,
		Registry:     shell.DefaultRegistry(),
		Service:      service,
		RenderResult: app.renderResult,
		RenderHelp:   app.renderHelp,
		In:           cmd.InOrStdin(),
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
		Spinner:      !batch,
	})

	if batch {
		return loop.RunOnce(ctx, opts.command)
	}

	printBanner(cmd.OutOrStdout(), account)
	return loop.Run(ctx)
}

func printBanner(out io.Writer, account string) {
	fmt.Fprintf(out, "igq %s (account: %s)\n", version.Version, account)
	fmt.Fprintln(out, "type \"help\" for commands, \"quit\" to leave")
}
