// Package check defines the quality checks known to the catalog and the
// source-string flags that tune them.
package check

import (
	"sort"
	"strings"
)

// Definition describes one quality check.
type Definition struct {
	// Name is the stable identifier stored with failing checks.
	Name string
	// Label is the human-readable check title.
	Label string
	// Source marks checks that run against source strings only.
	Source bool
}

var definitions = []Definition{
	{Name: "same", Label: "Unchanged translation"},
	{Name: "begin_newline", Label: "Starting newline"},
	{Name: "end_newline", Label: "Trailing newline"},
	{Name: "begin_space", Label: "Starting spaces"},
	{Name: "end_space", Label: "Trailing space"},
	{Name: "double_space", Label: "Double space"},
	{Name: "end_stop", Label: "Trailing stop"},
	{Name: "end_colon", Label: "Trailing colon"},
	{Name: "end_question", Label: "Trailing question"},
	{Name: "end_exclamation", Label: "Trailing exclamation"},
	{Name: "end_ellipsis", Label: "Trailing ellipsis"},
	{Name: "python_format", Label: "Python format"},
	{Name: "c_format", Label: "C format"},
	{Name: "php_format", Label: "PHP format"},
	{Name: "max_length", Label: "Maximum length of translation"},
	{Name: "inconsistent", Label: "Inconsistent"},
	{Name: "translated", Label: "Has been translated"},
	{Name: "optional_plural", Label: "Unpluralised", Source: true},
	{Name: "ellipsis", Label: "Ellipsis", Source: true},
	{Name: "multiple_failures", Label: "Multiple failing checks", Source: true},
	{Name: "long_untranslated", Label: "Long untranslated", Source: true},
}

var byName = func() map[string]Definition {
	index := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		index[def.Name] = def
	}
	return index
}()

// Lookup returns the definition of a named check.
func Lookup(name string) (Definition, bool) {
	def, ok := byName[strings.TrimSpace(name)]
	return def, ok
}

// All returns every known check ordered by name.
func All() []Definition {
	out := append([]Definition(nil), definitions...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Label returns the display label of a check, or its name when unknown.
func Label(name string) string {
	if def, ok := Lookup(name); ok {
		return def.Label
	}
	return name
}
