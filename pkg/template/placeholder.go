package template

import (
	"strings"
)

// Kind discriminates the placeholder variants.
type Kind int

const (
	// KindGeneric matches exactly one object whose name equals the
	// placeholder's literal value.
	KindGeneric Kind = iota

	// KindInteger matches objects whose names are purely numeric.
	KindInteger

	// KindSingle matches a single arbitrarily named object, which must be
	// the only object (and the only rule) at its level.
	KindSingle

	// KindExclusive marks its level as an alternation: either the
	// exclusive rule accounts for every object, or it claims nothing and
	// the remaining rules must.
	KindExclusive

	// KindAny matches any remaining objects unconditionally.
	KindAny

	// KindGroup concatenates an ordered sequence of placeholders into a
	// single segment pattern, e.g. a literal prefix plus an any suffix.
	KindGroup
)

// Evaluation order within one tree level. Generic and generic-led groups
// are concrete names and go first; Any is the catch-all and goes last.
const (
	priorityGeneric   = 0
	priorityInteger   = 1
	prioritySingle    = 2
	priorityExclusive = 3
	priorityAny       = 4
)

// Placeholder is a typed matcher for one path segment at one level of the
// expected directory tree. Placeholders are immutable values: two
// placeholders with the same kind, value and parts are interchangeable.
type Placeholder struct {
	kind  Kind
	value string        // KindGeneric only
	parts []Placeholder // KindGroup only
}

// The four operation placeholders. These are singletons in spirit: every
// use of Integer is equal to every other.
var (
	Integer   = Placeholder{kind: KindInteger}
	Single    = Placeholder{kind: KindSingle}
	Exclusive = Placeholder{kind: KindExclusive}
	Any       = Placeholder{kind: KindAny}
)

// Generic returns a placeholder matching exactly the given segment name.
func Generic(value string) Placeholder {
	return Placeholder{kind: KindGeneric, value: value}
}

// Group returns a placeholder matching a single segment against the
// concatenation of the given parts.
func Group(parts ...Placeholder) Placeholder {
	ps := make([]Placeholder, len(parts))
	copy(ps, parts)
	return Placeholder{kind: KindGroup, parts: ps}
}

// Kind returns the placeholder's variant.
func (p Placeholder) Kind() Kind {
	return p.kind
}

// Value returns the literal segment name of a Generic placeholder.
func (p Placeholder) Value() string {
	return p.value
}

// Parts returns the ordered parts of a Group placeholder.
func (p Placeholder) Parts() []Placeholder {
	out := make([]Placeholder, len(p.parts))
	copy(out, p.parts)
	return out
}

// Priority is the evaluation order within one tree level, lower first.
// Groups inherit the priority of their first operation part, so an
// exclusive-led group sorts like Exclusive and a literal-led group like a
// Generic.
func (p Placeholder) Priority() int {
	switch p.kind {
	case KindInteger:
		return priorityInteger
	case KindSingle:
		return prioritySingle
	case KindExclusive:
		return priorityExclusive
	case KindAny:
		return priorityAny
	case KindGroup:
		for _, part := range p.parts {
			if part.kind != KindGeneric {
				return part.Priority()
			}
		}
		return priorityGeneric
	default:
		return priorityGeneric
	}
}

// Equal reports whether two placeholders are the same rule: same kind,
// same literal value, same parts in the same order.
func (p Placeholder) Equal(other Placeholder) bool {
	if p.kind != other.kind || p.value != other.value {
		return false
	}
	if len(p.parts) != len(other.parts) {
		return false
	}
	for i := range p.parts {
		if !p.parts[i].Equal(other.parts[i]) {
			return false
		}
	}
	return true
}

// IsExclusive reports whether the placeholder puts its level into
// alternation mode: either Exclusive itself or a group led by it.
func (p Placeholder) IsExclusive() bool {
	if p.kind == KindExclusive {
		return true
	}
	if p.kind == KindGroup {
		for _, part := range p.parts {
			if part.kind == KindExclusive {
				return true
			}
		}
	}
	return false
}

// MatchesName reports whether a single object name matches the placeholder
// as a segment pattern. Generic is a literal chunk, Single one non-empty
// arbitrary chunk, Any a possibly-empty chunk, Integer a non-empty digit
// run, Exclusive zero-width, and Group the concatenation of its parts.
func (p Placeholder) MatchesName(name string) bool {
	return matchChunks([]Placeholder{p}, name)
}

func matchChunks(parts []Placeholder, name string) bool {
	if len(parts) == 0 {
		return name == ""
	}
	head, rest := parts[0], parts[1:]

	switch head.kind {
	case KindExclusive:
		return matchChunks(rest, name)
	case KindGeneric:
		if !strings.HasPrefix(name, head.value) {
			return false
		}
		return matchChunks(rest, name[len(head.value):])
	case KindInteger:
		for i := 1; i <= len(name); i++ {
			if name[i-1] < '0' || name[i-1] > '9' {
				break
			}
			if matchChunks(rest, name[i:]) {
				return true
			}
		}
		return false
	case KindSingle:
		for i := 1; i <= len(name); i++ {
			if matchChunks(rest, name[i:]) {
				return true
			}
		}
		return false
	case KindAny:
		for i := 0; i <= len(name); i++ {
			if matchChunks(rest, name[i:]) {
				return true
			}
		}
		return false
	case KindGroup:
		merged := make([]Placeholder, 0, len(head.parts)+len(rest))
		merged = append(merged, head.parts...)
		merged = append(merged, rest...)
		return matchChunks(merged, name)
	default:
		return false
	}
}

// String renders the placeholder in token form: "<integer>", "<any>",
// literal names verbatim, and groups as the concatenation of their parts.
func (p Placeholder) String() string {
	switch p.kind {
	case KindInteger:
		return "<integer>"
	case KindSingle:
		return "<single>"
	case KindExclusive:
		return "<exclusive>"
	case KindAny:
		return "<any>"
	case KindGroup:
		var b strings.Builder
		for _, part := range p.parts {
			b.WriteString(part.String())
		}
		return b.String()
	default:
		return p.value
	}
}

// TypeName returns the placeholder's kind as a lowercase word, used in
// error messages.
func (p Placeholder) TypeName() string {
	switch p.kind {
	case KindInteger:
		return "integer"
	case KindSingle:
		return "single"
	case KindExclusive:
		return "exclusive"
	case KindAny:
		return "any"
	case KindGroup:
		return "group"
	default:
		return "generic"
	}
}
