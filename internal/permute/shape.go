package permute

import (
	"strings"

	"defargs/internal/params"
)

// Tag classifies how a parameter is supplied in one calling shape.
type Tag uint8

const (
	// Positional is supplied by position, declaration order.
	Positional Tag = iota
	// Named is supplied as `name = expr`, any order.
	Named
	// DefaultUsed is a defaulted parameter the caller supplies by name.
	DefaultUsed
	// DefaultUnused is a defaulted parameter the caller omits; its default
	// descriptor is substituted at the call site.
	DefaultUnused
)

func (t Tag) String() string {
	switch t {
	case Positional:
		return "Positional"
	case Named:
		return "Named"
	case DefaultUsed:
		return "DefaultUsed"
	case DefaultUnused:
		return "DefaultUnused"
	}
	return "Unknown"
}

// Slot is one tagged parameter inside a shape.
type Slot struct {
	Tag   Tag
	Param params.Param
}

// Shape is one admissible calling form: an ordered sequence of tagged
// parameter slots. Shapes are the only output of the engine.
type Shape []Slot

// String renders a compact debug form such as
// "[Positional a, Named c, DefaultUnused d]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, slot := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(slot.Tag.String())
		b.WriteByte(' ')
		b.WriteString(slot.Param.Pat.Text)
	}
	b.WriteByte(']')
	return b.String()
}

// HasPattern reports whether the shape contributes at least one token to
// the match pattern. The all-DefaultUnused shape does not, and is skipped
// at emission while still counting toward the engine's output.
func (s Shape) HasPattern() bool {
	for _, slot := range s {
		if slot.Tag != DefaultUnused {
			return true
		}
	}
	return false
}

// concat builds a new shape from two halves.
func concat(a, b Shape) Shape {
	out := make(Shape, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
