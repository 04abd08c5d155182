package sendmodal

import (
	"askfun/internal/catalog"
)

// SelectionKind classifies the raw send value.
type SelectionKind int

const (
	SelectionNone    SelectionKind = iota // no send value
	SelectionKnown                        // matches a catalog key, ignoring case
	SelectionUnknown                      // present but not in the catalog
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionKnown:
		return "known"
	case SelectionUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// Selection is the parsed form of the send query value.
type Selection struct {
	Kind   SelectionKind
	Raw    string
	Option catalog.MessageOption // zero unless Kind is SelectionKnown
}

// ParseSelection validates raw against the catalog. Whitespace is significant:
// " general" is an unknown option, not "general".
func ParseSelection(raw string, c *catalog.Catalog) Selection {
	if raw == "" {
		return Selection{Kind: SelectionNone}
	}
	if opt, ok := c.Lookup(raw); ok {
		return Selection{Kind: SelectionKnown, Raw: raw, Option: opt}
	}
	return Selection{Kind: SelectionUnknown, Raw: raw}
}

// Present reports whether a send value was supplied at all.
func (s Selection) Present() bool {
	return s.Kind != SelectionNone
}

// Label is the title-cased raw value. Unknown values are displayed as-is, not rejected.
func (s Selection) Label() string {
	if !s.Present() {
		return ""
	}
	return TitleCase(s.Raw)
}

// Selects reports whether the picker entry for key should be marked selected.
func (s Selection) Selects(key string) bool {
	return s.Kind == SelectionKnown && s.Option.Key == key
}
