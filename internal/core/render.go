package core

import (
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// BodyWidth is the column the body is wrapped at.
	BodyWidth = 100

	breakingLabel = "BREAKING CHANGE: "
)

// Options tweak rendering without changing the convention.
type Options struct {
	DisableSubjectLowerCase bool
}

// Render formats d with the default options.
func Render(d Draft) string {
	return Options{}.Render(d)
}

// Render formats d as a conventional-changelog commit message.
func (o Options) Render(d Draft) string {
	var b strings.Builder
	b.Grow(512)

	b.WriteString(d.Tag)
	if d.Scope != "" {
		b.WriteString("(" + d.Scope + ")")
	}
	b.WriteString(": ")
	b.WriteString(o.filterSubject(d.Subject))

	if d.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(wordwrap.WrapString(d.Body, BodyWidth))
	}

	if d.Breaking {
		b.WriteString("\n\n")
		b.WriteString(breakingLabel)
		b.WriteString(strings.ReplaceAll(d.BreakingBody, breakingLabel, ""))
	}

	if d.Issues != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Issues)
	}

	return b.String()
}

func (o Options) filterSubject(subject string) string {
	if !o.DisableSubjectLowerCase {
		subject = lowerFirst(subject)
	}
	return strings.TrimRight(subject, ".")
}

// FilterSubject lower-cases the first character of subject and strips
// trailing periods.
func FilterSubject(subject string) string {
	return Options{}.filterSubject(subject)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Lower(language.Und).String(s[:size]) + s[size:]
}
