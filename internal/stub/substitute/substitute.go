// Package substitute performs literal placeholder replacement on stub content.
// Search strings are plain text, never patterns.
package substitute

import (
	"strings"
	"time"

	"github.com/tacogips/stubgen/internal/debug"
	"github.com/tacogips/stubgen/internal/stub/model"
)

// Default placeholder literals found in stub templates.
const (
	DefaultAuthorPlaceholder      = "NAME"
	DefaultDescriptionPlaceholder = "Insert description here..."
	DefaultDatePlaceholder        = "MM/DD/YYYY"
	// DefaultDateLayout renders dates as MM/DD/YYYY.
	DefaultDateLayout = "01/02/2006"
)

// Rule is one literal find-and-replace-all pass.
type Rule struct {
	// Name identifies the rule in logs and errors.
	Name string
	// Search is the literal to find. Must not be empty.
	Search string
	// Replace is inserted for every occurrence of Search.
	Replace string
}

// ReplaceAll replaces every non-overlapping occurrence of search in text,
// scanning left to right in a single pass. Text inserted by a replacement is
// never rescanned, so a replacement that contains search still terminates.
func ReplaceAll(text, search, replace string) (string, error) {
	if search == "" {
		return "", model.NewInvalidArgumentError("search literal cannot be empty")
	}

	return strings.ReplaceAll(text, search, replace), nil
}

// Apply runs each rule over text in order.
func Apply(text string, rules []Rule) (string, error) {
	out := text
	for _, r := range rules {
		var err error
		out, err = ReplaceAll(out, r.Search, r.Replace)
		if err != nil {
			return "", model.NewStubError(model.InvalidArgument, "invalid substitution rule "+r.Name, "", err)
		}
		debug.Debug("[substitute] applied rule %s (%q)", r.Name, r.Search)
	}
	return out, nil
}

// Placeholders holds the literals replaced in every stub.
type Placeholders struct {
	Author      string
	Description string
	Date        string
	// DateLayout is a Go time layout used to render the date.
	DateLayout string
}

// DefaultPlaceholders returns the standard placeholder literals.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Author:      DefaultAuthorPlaceholder,
		Description: DefaultDescriptionPlaceholder,
		Date:        DefaultDatePlaceholder,
		DateLayout:  DefaultDateLayout,
	}
}

// Values are the session values substituted into a stub.
type Values struct {
	// Identifier is the stub identifier found in template content.
	Identifier string
	// OutputName replaces Identifier.
	OutputName string
	// Author replaces the author placeholder.
	Author string
	// Description replaces the description placeholder.
	Description string
	// Date is rendered with Placeholders.DateLayout.
	Date time.Time
}

// StandardRules returns the four substitutions in their fixed order:
// identifier, author, description, date.
func StandardRules(p Placeholders, v Values) []Rule {
	layout := p.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	return []Rule{
		{Name: "identifier", Search: v.Identifier, Replace: v.OutputName},
		{Name: "author", Search: p.Author, Replace: v.Author},
		{Name: "description", Search: p.Description, Replace: v.Description},
		{Name: "date", Search: p.Date, Replace: v.Date.Format(layout)},
	}
}
