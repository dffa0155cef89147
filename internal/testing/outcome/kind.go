package outcome

import "fmt"

// Kind classifies why a check or a field comparison failed.
type Kind string

const (
	// KindFixtureNotFound means the fixture file does not exist. Fatal to the check.
	KindFixtureNotFound Kind = "FixtureNotFound"
	// KindFixtureParse means the fixture is not valid JSON for its schema. Fatal to the check.
	KindFixtureParse Kind = "FixtureParseError"
	// KindStructural means a required UI/state precondition is false. Fatal to the check.
	KindStructural Kind = "StructuralPrecondition"
	// KindCapabilityAbsent means the live object lacks the component needed for a field.
	KindCapabilityAbsent Kind = "CapabilityAbsent"
	// KindValueMismatch means a present value differs from the expectation.
	KindValueMismatch Kind = "ValueMismatch"
	// KindLookupCardinality means zero or several live objects matched a lookup key.
	KindLookupCardinality Kind = "LookupCardinalityError"
	// KindInternal is an unexpected fault while reading the host.
	KindInternal Kind = "InternalError"
)

// Mismatch is one failed field comparison.
type Mismatch struct {
	Kind    Kind
	Field   string
	Message string
}

func (m Mismatch) String() string {
	switch m.Kind {
	case KindValueMismatch:
		return m.Message
	case KindCapabilityAbsent:
		return fmt.Sprintf("%s: capability absent: %s", m.Field, m.Message)
	case KindLookupCardinality:
		return "lookup cardinality: " + m.Message
	case KindInternal:
		return "host access failure: " + m.Message
	default:
		if m.Field == "" {
			return m.Message
		}
		return fmt.Sprintf("%s: %s", m.Field, m.Message)
	}
}

// ValueMismatch builds the "field actual, expected want" reason.
func ValueMismatch(field string, actual, expected any) Mismatch {
	return Mismatch{
		Kind:    KindValueMismatch,
		Field:   field,
		Message: fmt.Sprintf("%s %v, expected %v", field, actual, expected),
	}
}

// CapabilityAbsent builds the reason for a missing component.
func CapabilityAbsent(field, capability string) Mismatch {
	return Mismatch{
		Kind:    KindCapabilityAbsent,
		Field:   field,
		Message: capability,
	}
}

// LookupCardinality builds the reason for a lookup key matching count live objects.
func LookupCardinality(key string, count int) Mismatch {
	return Mismatch{
		Kind:    KindLookupCardinality,
		Field:   key,
		Message: fmt.Sprintf("%d live matches for %q, expected exactly 1", count, key),
	}
}

// HostFault builds the single reason synthesized from an unexpected host access fault.
func HostFault(cause any) Mismatch {
	return Mismatch{
		Kind:    KindInternal,
		Message: fmt.Sprintf("%v", cause),
	}
}
