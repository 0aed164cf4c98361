package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"simplesh/internal/builtin"
	"simplesh/internal/config"
	"simplesh/internal/execute"
	"simplesh/internal/lineread"
	"simplesh/internal/prompt"
	"simplesh/internal/repl"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "simplesh: %s\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "simplesh",
		Short:         "A minimal interactive command shell",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cfg, stdin, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt marker printed before each line")
	f.BoolVar(&cfg.RichPrompt, "rich-prompt", cfg.RichPrompt, "show user@host:cwd in the prompt")
	f.StringVar(&cfg.Delimiters, "delimiters", cfg.Delimiters, "characters that separate arguments")
	f.BoolVar(&cfg.LineEditing, "edit", cfg.LineEditing, "enable line editing and history on a terminal")
	f.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "history file used with line editing")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log dispatch and process diagnostics")

	return cmd
}

func serve(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	launcher := execute.NewLauncher(logger)
	launcher.Errors = stderr

	dispatcher := execute.NewDispatcher(builtin.New(), launcher, logger)
	dispatcher.Stdout, dispatcher.Stderr = stdout, stderr

	reader := lineread.Open(cfg.LineEditing, cfg.HistoryFile, stdin, stdout, logger)
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warn("closing line reader", "err", err)
		}
	}()

	sh := &repl.Shell{
		Reader:     reader,
		Executor:   dispatcher,
		Prompt:     prompt.New(cfg.Prompt, cfg.RichPrompt),
		Delimiters: cfg.Delimiters,
		Out:        stdout,
		Logger:     logger,
	}
	return sh.Run()
}
