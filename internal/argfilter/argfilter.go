// Package argfilter strips message-supplying flags from git commit arguments
// so the commit message can be generated interactively instead.
package argfilter

import "regexp"

var (
	// -m, -mfoo, -am, -avm ...: letters before the m are other short options.
	shortMessage = regexp.MustCompile(`^-([a-zA-Z]*)m(.*)$`)
	longMessage  = regexp.MustCompile(`^--message(=.*)?$`)
)

const (
	amendFlag      = "--amend"
	retryFlag      = "--retry"
	allowEmptyFlag = "--allow-empty"
)

// State is the state of the filter between two tokens.
type State int

const (
	// Normal means the next token is inspected.
	Normal State = iota
	// SkipOne means the next token is the value of a message flag and is dropped.
	SkipOne
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case SkipOne:
		return "skip-one"
	default:
		return "unknown"
	}
}

// Step consumes a single token and returns the next state along with the
// tokens to emit for it.
func Step(state State, arg string) (State, []string) {
	if state == SkipOne {
		return Normal, nil
	}

	if m := shortMessage.FindStringSubmatch(arg); m != nil {
		preceding, following := m[1], m[2]

		var emit []string
		if preceding != "" {
			emit = []string{"-" + preceding}
		}
		if following == "" {
			return SkipOne, emit
		}
		return Normal, emit
	}

	if m := longMessage.FindStringSubmatch(arg); m != nil {
		if m[1] == "" {
			return SkipOne, nil
		}
		return Normal, nil
	}

	return Normal, []string{arg}
}

// Fold runs Step over args and returns the retained tokens together with
// the final state. A trailing bare -m or --message leaves the state at SkipOne.
func Fold(args []string) ([]string, State) {
	out := make([]string, 0, len(args))
	state := Normal
	for _, arg := range args {
		var emit []string
		state, emit = Step(state, arg)
		out = append(out, emit...)
	}
	return out, state
}

// Filter removes any message declaration from args while keeping every other
// token in its original order.
func Filter(args []string) []string {
	out, _ := Fold(args)
	return out
}

// HasAmend reports whether the raw arguments ask git to amend the last commit.
func HasAmend(args []string) bool {
	return contains(args, amendFlag)
}

// IsRetry reports whether the filtered arguments start with the retry marker.
func IsRetry(args []string) bool {
	return len(args) > 0 && args[0] == retryFlag
}

// AllowsEmpty reports whether an empty commit was explicitly requested.
func AllowsEmpty(args []string) bool {
	return contains(args, allowEmptyFlag)
}

// Without returns a copy of args with every occurrence of token removed.
func Without(args []string, token string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != token {
			out = append(out, arg)
		}
	}
	return out
}

func contains(args []string, token string) bool {
	for _, arg := range args {
		if arg == token {
			return true
		}
	}
	return false
}
