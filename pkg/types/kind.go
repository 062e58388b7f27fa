package types

// Kind tags the cargo category of a Container. Category policy is applied
// by Container.Load and Container.Unload switching on the tag.
type Kind int

// Container kinds. KindBase follows the shared rules only and is never
// issued by a Registry.
const (
	KindBase Kind = iota
	KindLiquid
	KindGas
	KindRefrigerated
)

// Code returns the one-letter category code used in serial numbers.
func (k Kind) Code() string {
	switch k {
	case KindLiquid:
		return "L"
	case KindGas:
		return "G"
	case KindRefrigerated:
		return "C"
	default:
		return "B"
	}
}

func (k Kind) String() string {
	switch k {
	case KindLiquid:
		return "liquid"
	case KindGas:
		return "gas"
	case KindRefrigerated:
		return "refrigerated"
	default:
		return "base"
	}
}

// ParseKind maps a kind name as returned by String back to its Kind.
// The second result is false for unknown names and for "base".
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "liquid":
		return KindLiquid, true
	case "gas":
		return KindGas, true
	case "refrigerated":
		return KindRefrigerated, true
	default:
		return KindBase, false
	}
}

// notifies reports whether containers of this kind carry the hazard
// notification capability.
func (k Kind) notifies() bool {
	return k == KindLiquid || k == KindGas || k == KindRefrigerated
}
