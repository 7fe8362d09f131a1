package core

import (
	"strings"
	"unicode/utf8"
)

// MaxHeaderWidth bounds the whole first line of the message.
const MaxHeaderWidth = 100

// Draft holds the answers collected during one prompt session.
type Draft struct {
	Tag           string
	Scope         string
	Subject       string
	Body          string
	Breaking      bool
	BreakingBody  string
	AffectsIssues bool
	Issues        string
}

// HeaderLength is the width taken by "tag(scope): " in front of the subject.
func HeaderLength(d Draft) int {
	n := utf8.RuneCountInString(d.Tag) + 2
	if scope := strings.TrimSpace(d.Scope); scope != "" {
		n += utf8.RuneCountInString(scope) + 2
	}
	return n
}

// MaxSubjectLength is the subject budget left once the header is known.
func MaxSubjectLength(d Draft) int {
	return MaxHeaderWidth - HeaderLength(d)
}

// Validate checks the invariants a draft must hold before it is rendered.
func (d Draft) Validate() error {
	switch {
	case d.Tag == "":
		return errMissing("type")
	case d.Subject == "":
		return errMissing("subject")
	case utf8.RuneCountInString(d.Subject) > MaxSubjectLength(d):
		return &DraftError{Field: "subject", Reason: "exceeds the header budget"}
	case d.Breaking && d.Body == "":
		return errMissing("body")
	case d.Breaking && d.BreakingBody == "":
		return errMissing("breaking change description")
	case d.AffectsIssues && d.Body == "" && d.BreakingBody == "":
		return errMissing("body")
	}
	return nil
}

// DraftError reports a draft that cannot be rendered.
type DraftError struct {
	Field  string
	Reason string
}

func (e *DraftError) Error() string {
	return "invalid draft: " + e.Field + " " + e.Reason
}

func errMissing(field string) error {
	return &DraftError{Field: field, Reason: "is required"}
}
