package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Prompter is the terminal capability the builder asks its questions through.
type Prompter interface {
	// Select returns the chosen option index. ok is false when the user
	// cancelled without choosing.
	Select(prompt string, options []string, defaultIndex int) (index int, ok bool, err error)
	Confirm(prompt string, defaultValue bool) (bool, error)
	Input(prompt string, allowEmpty bool) (string, error)
}

// Policy decides whether a trimmed answer is accepted for a field.
// Rejected answers are asked for again.
type Policy func(d *Draft, value string) bool

// Optional accepts anything, including an empty answer.
func Optional(*Draft, string) bool { return true }

// Required accepts any non-empty answer.
func Required(_ *Draft, value string) bool { return value != "" }

// WithinSubjectBudget accepts a non-empty subject that fits after the header.
func WithinSubjectBudget(d *Draft, value string) bool {
	return value != "" && utf8.RuneCountInString(value) <= MaxSubjectLength(*d)
}

// ScopeFits accepts a scope that leaves room for at least one subject character.
func ScopeFits(d *Draft, value string) bool {
	probe := Draft{Tag: d.Tag, Scope: value}
	return MaxSubjectLength(probe) > 0
}

type step interface {
	run(p Prompter, d *Draft) error
}

type selectTypeStep struct {
	prompt string
	types  []CommitType
}

func (s selectTypeStep) run(p Prompter, d *Draft) error {
	labels := make([]string, len(s.types))
	for i, t := range s.types {
		labels[i] = t.String()
	}

	idx, ok, err := p.Select(s.prompt, labels, 0)
	if err != nil {
		return wrapPromptErr("select", err)
	}
	if !ok || idx < 0 || idx >= len(s.types) {
		return ErrUserAborted
	}
	d.Tag = s.types[idx].Tag
	return nil
}

type confirmStep struct {
	prompt string
	assign func(d *Draft, v bool)
}

func (s confirmStep) run(p Prompter, d *Draft) error {
	v, err := p.Confirm(s.prompt, false)
	if err != nil {
		return wrapPromptErr("confirm", err)
	}
	s.assign(d, v)
	return nil
}

type textStep struct {
	// when gates the step; nil means always.
	when       func(d *Draft) bool
	prompt     func(d *Draft) string
	retry      func(d *Draft, last string) string
	allowEmpty bool
	accept     Policy
	assign     func(d *Draft, v string)
}

func (s textStep) run(p Prompter, d *Draft) error {
	if s.when != nil && !s.when(d) {
		return nil
	}

	prompt := s.prompt(d)
	for {
		raw, err := p.Input(prompt, s.allowEmpty)
		if err != nil {
			return wrapPromptErr("input", err)
		}
		value := strings.TrimSpace(raw)
		if s.accept(d, value) {
			s.assign(d, value)
			return nil
		}
		if s.retry != nil {
			prompt = s.retry(d, value)
		}
	}
}

func staticPrompt(text string) func(*Draft) string {
	return func(*Draft) string { return text }
}

// Builder walks the user through the commit message questions.
type Builder struct {
	prompter Prompter
	types    []CommitType
	opts     Options
}

// NewBuilder returns a Builder asking through p and offering types.
func NewBuilder(p Prompter, types []CommitType, opts Options) *Builder {
	if p == nil {
		panic("prompter cannot be nil")
	}
	if len(types) == 0 {
		panic("commit types cannot be empty")
	}
	return &Builder{
		prompter: p,
		types:    types,
		opts:     opts,
	}
}

func (b *Builder) steps() []step {
	return []step{
		selectTypeStep{
			prompt: "Select the type of change that you're committing:",
			types:  b.types,
		},
		textStep{
			prompt:     staticPrompt("What is the scope of this change (e.g. component or file name): (press enter to skip)"),
			retry:      staticRetry("The scope leaves no room for a subject, please enter a shorter scope: (press enter to skip)"),
			allowEmpty: true,
			accept:     ScopeFits,
			assign:     func(d *Draft, v string) { d.Scope = v },
		},
		textStep{
			prompt: func(d *Draft) string {
				return fmt.Sprintf("Write a short, imperative tense description of the change (max %d chars):", MaxSubjectLength(*d))
			},
			retry: func(d *Draft, last string) string {
				return fmt.Sprintf("Subject is required, and must be at most %d characters. Current length is %d:",
					MaxSubjectLength(*d), utf8.RuneCountInString(last))
			},
			accept: WithinSubjectBudget,
			assign: func(d *Draft, v string) { d.Subject = v },
		},
		textStep{
			prompt:     staticPrompt("Provide a longer description of the change: (press enter to skip)"),
			allowEmpty: true,
			accept:     Optional,
			assign:     func(d *Draft, v string) { d.Body = v },
		},
		confirmStep{
			prompt: "Are there any breaking changes?",
			assign: func(d *Draft, v bool) { d.Breaking = v },
		},
		textStep{
			when:   func(d *Draft) bool { return d.Breaking && d.Body == "" },
			prompt: staticPrompt("A BREAKING CHANGE commit requires a body. Please enter a longer description of the commit itself:"),
			accept: Required,
			assign: func(d *Draft, v string) { d.Body = v },
		},
		textStep{
			when:   func(d *Draft) bool { return d.Breaking },
			prompt: staticPrompt("Describe the breaking changes:"),
			accept: Required,
			assign: func(d *Draft, v string) { d.BreakingBody = v },
		},
		confirmStep{
			prompt: "Does this change affect any open issues?",
			assign: func(d *Draft, v bool) { d.AffectsIssues = v },
		},
		textStep{
			when:   func(d *Draft) bool { return d.AffectsIssues && d.Body == "" && d.BreakingBody == "" },
			prompt: staticPrompt("If issues are closed, the commit requires a body. Please enter a longer description of the commit itself:"),
			accept: Required,
			assign: func(d *Draft, v string) { d.Body = v },
		},
		textStep{
			when:       func(d *Draft) bool { return d.AffectsIssues },
			prompt:     staticPrompt(`Add issue references (e.g. "fix #123", "re #123".):`),
			allowEmpty: true,
			accept:     Optional,
			assign:     func(d *Draft, v string) { d.Issues = v },
		},
	}
}

func staticRetry(text string) func(*Draft, string) string {
	return func(*Draft, string) string { return text }
}

// Collect asks every question and returns the completed draft.
func (b *Builder) Collect() (Draft, error) {
	var d Draft
	for _, s := range b.steps() {
		if err := s.run(b.prompter, &d); err != nil {
			return Draft{}, err
		}
	}
	return d, nil
}

// Build asks every question and renders the resulting commit message.
func (b *Builder) Build() (string, error) {
	d, err := b.Collect()
	if err != nil {
		return "", err
	}
	if err := d.Validate(); err != nil {
		return "", err
	}
	return b.opts.Render(d), nil
}
