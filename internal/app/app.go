// Package app drives one git-cz invocation: it decides whether to bypass the
// prompts, asks for the commit message and hands it to git.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gitcz/internal/argfilter"
	"gitcz/internal/core"
	"gitcz/internal/git"
	"gitcz/internal/tui"

	"github.com/rs/zerolog/log"
)

// ErrNothingStaged is returned when there is nothing to commit and an empty
// commit was not asked for.
var ErrNothingStaged = errors.New("no files added to staging! Did you forget to run git add?")

// Git is the subset of git the flow needs.
type Git interface {
	Passthrough(args []string) error
	StagingIsClean() (bool, error)
	Commit(message string, args []string) (string, error)
}

// Reviewer lets the user look at the rendered message before committing.
type Reviewer interface {
	Review(message string) (tui.MenuAction, error)
}

// Indicator shows that a slow operation is running.
type Indicator interface {
	Start(message string)
	Stop()
}

type App struct {
	Git      Git
	Prompter core.Prompter
	Types    []core.CommitType
	Options  core.Options

	// Reviewer is only consulted when Interactive is set.
	Interactive bool
	Reviewer    Reviewer
	Indicator   Indicator
	Copy        func(content string) error
	Stdout      io.Writer
}

// Run handles the arguments git-cz was invoked with, program name excluded.
func (a *App) Run(ctx context.Context, args []string) error {
	if argfilter.HasAmend(args) {
		log.Debug().Strs("args", args).Msg("Amending, handing over to git")
		return a.Git.Passthrough(args)
	}

	filtered := argfilter.Filter(args)
	if argfilter.IsRetry(filtered) {
		log.Warn().Msg("Retrying the last commit is not supported, starting a new message")
		filtered = argfilter.Without(filtered, "--retry")
	}
	log.Debug().Strs("args", filtered).Msg("Filtered commit arguments")

	clean, err := a.Git.StagingIsClean()
	if err != nil {
		return fmt.Errorf("failed to inspect staging area: %w", err)
	}
	if clean && !argfilter.AllowsEmpty(filtered) {
		return ErrNothingStaged
	}

	builder := core.NewBuilder(a.Prompter, a.Types, a.Options)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		message, err := builder.Build()
		if err != nil {
			return err
		}

		if !a.Interactive || a.Reviewer == nil {
			return a.commit(message, filtered)
		}

		action, err := a.Reviewer.Review(message)
		if err != nil {
			return &core.EnvironmentError{Op: "review", Err: err}
		}

		switch action {
		case tui.CommitThis:
			return a.commit(message, filtered)
		case tui.CopyToClipboard:
			copyFn := a.Copy
			if copyFn == nil {
				copyFn = tui.WriteClipboard
			}
			if err := copyFn(message); err != nil {
				return err
			}
			log.Info().Msg("Commit message copied to clipboard.")
			return nil
		case tui.EditAgain:
			log.Debug().Msg("Starting over")
			continue
		default:
			log.Info().Msg("Commit aborted.")
			return core.ErrUserAborted
		}
	}
}

func (a *App) commit(message string, args []string) error {
	if a.Indicator != nil {
		a.Indicator.Start("Committing...")
	}
	out, err := a.Git.Commit(message, args)
	if a.Indicator != nil {
		a.Indicator.Stop()
	}

	if err != nil {
		var gitErr *git.GitError
		if errors.As(err, &gitErr) && gitErr.Hint() != "" {
			log.Warn().Msg(gitErr.Hint())
		}
		return fmt.Errorf("failed to execute git commit: %w", err)
	}

	if a.Stdout != nil && out != "" {
		fmt.Fprint(a.Stdout, out)
	}
	log.Info().Msg("Commit successfully created!")
	return nil
}
