package types

// OutcomeKind classifies the result of resolving a code.
type OutcomeKind int

const (
	// NoLookup means the input was malformed and nothing was looked up.
	NoLookup OutcomeKind = iota
	// Resolved means exactly one venue name was found or chosen.
	Resolved
	// Ambiguous means several directory venues share the short code.
	Ambiguous
	// NotFound means the code is well-formed but unknown to both stores.
	NotFound
)

// String returns a lowercase label suitable for logs and metric labels.
func (k OutcomeKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	case NotFound:
		return "not_found"
	default:
		return "no_lookup"
	}
}

// Outcome is what the resolver hands to the display layer.
type Outcome struct {
	Kind OutcomeKind

	// Name is set when Kind is Resolved. It may contain line breaks.
	Name string

	// Candidates holds every matching name, in directory order, when Kind is Ambiguous.
	Candidates []string

	// ShortCode carries the code forward so a NotFound can seed the creation form.
	ShortCode ShortCode

	// Overridden is true when Name came from the override store.
	Overridden bool
}
