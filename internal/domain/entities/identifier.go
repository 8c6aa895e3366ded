package entities

import (
	"fmt"
	"regexp"
)

// IdentifierKind discriminates the three forms an interface identifier
// can take.
type IdentifierKind int

const (
	// IdentifierSequence references an interface by its ordinal position,
	// used in virtualized deployments where devices are enumerated by
	// creation order.
	IdentifierSequence IdentifierKind = iota

	// IdentifierHardwareAddress references an interface by MAC address.
	IdentifierHardwareAddress

	// IdentifierName references an interface by its literal device name.
	IdentifierName
)

// Identifier is a tagged variant over the three identifier forms.
// Exactly one form is active per value.
type Identifier struct {
	kind  IdentifierKind
	index int
	value string
}

// SequenceIdentifier creates an identifier for an ordinal position.
func SequenceIdentifier(index int) Identifier {
	return Identifier{kind: IdentifierSequence, index: index}
}

// HardwareAddressIdentifier creates an identifier for a MAC address.
func HardwareAddressIdentifier(addr string) Identifier {
	return Identifier{kind: IdentifierHardwareAddress, value: addr}
}

// NameIdentifier creates an identifier for a literal device name.
func NameIdentifier(name string) Identifier {
	return Identifier{kind: IdentifierName, value: name}
}

// ClassifyIdentifier maps a loosely typed value onto the identifier
// variant by shape: integers are sequence positions, strings matching
// the hardware address format are MAC addresses, everything else is
// taken verbatim as the device name.
func ClassifyIdentifier(v any) (Identifier, error) {
	switch value := v.(type) {
	case int:
		return SequenceIdentifier(value), nil
	case int64:
		return SequenceIdentifier(int(value)), nil
	case string:
		if IsHardwareAddress(value) {
			return HardwareAddressIdentifier(value), nil
		}
		return NameIdentifier(value), nil
	default:
		return Identifier{}, fmt.Errorf("unsupported identifier type %T", v)
	}
}

// Kind returns the active variant.
func (i Identifier) Kind() IdentifierKind {
	return i.kind
}

// Index returns the sequence position. Only meaningful for
// IdentifierSequence.
func (i Identifier) Index() int {
	return i.index
}

// Value returns the string payload. Only meaningful for
// IdentifierHardwareAddress and IdentifierName.
func (i Identifier) Value() string {
	return i.value
}

// String renders the identifier for log output.
func (i Identifier) String() string {
	if i.kind == IdentifierSequence {
		return fmt.Sprintf("seq:%d", i.index)
	}
	return i.value
}

var hardwareAddressRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)

// IsHardwareAddress reports whether the value has the six-octet
// colon or dash separated hardware address shape.
func IsHardwareAddress(value string) bool {
	return hardwareAddressRegex.MatchString(value)
}
