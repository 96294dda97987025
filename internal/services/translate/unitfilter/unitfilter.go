// Package unitfilter maps review listing "type" values onto unit filters.
package unitfilter

import (
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/check"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

// DefaultType is used when no type is requested.
const DefaultType = "all"

// Parse returns the unit filter selected by a listing type. Unknown types list
// every unit. Ignored selects ignored checks instead of active ones for the
// check-based types.
func Parse(typ string, ignored bool) storage.UnitFilter {
	typ = strings.TrimSpace(typ)
	filter := storage.UnitFilter{Kind: storage.FilterAll, Ignored: ignored}
	switch typ {
	case "", DefaultType:
	case "fuzzy":
		filter.Kind = storage.FilterFuzzy
	case "untranslated", "todo":
		filter.Kind = storage.FilterUntranslated
	case "nottranslated":
		filter.Kind = storage.FilterNotTranslated
	case "translated":
		filter.Kind = storage.FilterTranslated
	case "sourcecomments":
		filter.Kind = storage.FilterSourceComments
	case "targetcomments":
		filter.Kind = storage.FilterTargetComments
	case "allchecks":
		filter.Kind = storage.FilterAllChecks
	case "sourcechecks":
		filter.Kind = storage.FilterSourceChecks
	default:
		if def, ok := check.Lookup(typ); ok {
			filter.Kind = storage.FilterNamedCheck
			filter.CheckName = def.Name
			filter.SourceCheck = def.Source
		}
	}
	return filter
}

// ForChecksum returns a filter selecting the unit with one checksum.
func ForChecksum(checksum string) storage.UnitFilter {
	return storage.UnitFilter{Kind: storage.FilterAll, Checksum: strings.TrimSpace(checksum)}
}
