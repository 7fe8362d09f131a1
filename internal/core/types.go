package core

import "fmt"

// CommitType is one of the conventional-changelog change types.
type CommitType struct {
	Tag         string
	Description string
}

func (c CommitType) String() string {
	return fmt.Sprintf("%-9s %s", c.Tag+":", c.Description)
}

// DefaultTypes returns the conventional-changelog types in display order.
// The first entry is the default selection.
func DefaultTypes() []CommitType {
	return []CommitType{
		{Tag: "feat", Description: "A new feature"},
		{Tag: "fix", Description: "A bug fix"},
		{Tag: "docs", Description: "Documentation only changes"},
		{Tag: "style", Description: "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)"},
		{Tag: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
		{Tag: "perf", Description: "A code change that improves performance"},
		{Tag: "test", Description: "Adding missing tests or correcting existing tests"},
		{Tag: "build", Description: "Changes that affect the build system or external dependencies (example scopes: gulp, broccoli, npm)"},
		{Tag: "ci", Description: "Changes to our CI configuration files and scripts (example scopes: Travis, Circle, BrowserStack, SauceLabs)"},
		{Tag: "chore", Description: "Other changes that don't modify src or test files"},
		{Tag: "revert", Description: "Reverts a previous commit"},
	}
}
