package main

import (
	"errors"
	"os"

	"gitcz/internal/app"
	"gitcz/internal/config"
	"gitcz/internal/core"
	"gitcz/internal/git"
	"gitcz/internal/tui"
	"gitcz/internal/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "git-cz [git commit options]",
	Short: "Write conventional commit messages through a guided prompt",
	Long: `git-cz replaces "git commit": it asks for the type, scope, subject, body,
breaking changes and issue references of a change, formats them as a
conventional-changelog message and commits with it.

Every argument is passed on to git commit, except -m/--message which git-cz
supplies itself. With --amend git is run directly without any prompts.`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if utils.IsDebug() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, core.ErrUserAborted) {
			log.Info().Msg("User quit, aborting.")
			os.Exit(1)
		}
		log.Error().Err(err).Msg("git-cz failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interactive := utils.IsTTY()
	terminal := tui.NewTerminal()

	var prompter core.Prompter = terminal
	if !interactive {
		log.Debug().Msg("No terminal attached, reading answers line by line")
		prompter = tui.NewLine(os.Stdin, os.Stderr)
	}

	a := &app.App{
		Git:         git.NewClient(),
		Prompter:    prompter,
		Types:       core.DefaultTypes(),
		Options:     core.Options{DisableSubjectLowerCase: cfg.DisableSubjectLowerCase},
		Interactive: interactive,
		Reviewer:    terminal,
		Indicator:   tui.NewSpinner(interactive),
		Copy:        tui.WriteClipboard,
		Stdout:      cmd.OutOrStdout(),
	}
	return a.Run(cmd.Context(), args)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(".")
	switch {
	case err == nil:
		log.Debug().Str("source", cfg.Source).Str("adapter", cfg.Path).Msg("Loaded commitizen config")
	case errors.Is(err, config.ErrNotFound):
		cfg = &config.Config{}
	default:
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
