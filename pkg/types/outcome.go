package types

// Outcome is the soft result of an operation. It is distinct from an error:
// OutcomeUnrecognizedContents and OutcomeNotFound leave state unchanged but
// are informational, and callers may ignore them. A hard failure is always
// reported through the error return, paired with OutcomeRejected.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeApplied
	OutcomeUnrecognizedContents
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeUnrecognizedContents:
		return "unrecognized contents"
	case OutcomeNotFound:
		return "not found"
	default:
		return "rejected"
	}
}

// Applied reports whether the operation changed state.
func (o Outcome) Applied() bool {
	return o == OutcomeApplied
}
