package fieldpath

import (
	"strings"
)

// Field is one bound form control: the enclosing chain, the leaf segment and
// the explicit name/id attributes supplied by the markup, if any.
type Field struct {
	Prefix  Prefix
	Segment Segment
	Name    string
	ID      string
}

// FieldName returns the value for the control's name attribute. An explicit
// Name wins; a root field with no segment and no override yields "".
func (f Field) FieldName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Prefix.FieldName(f.Segment)
}

// FieldID returns the value for the control's id attribute: the explicit ID,
// or the sanitized field name.
func (f Field) FieldID() string {
	if f.ID != "" {
		return f.ID
	}
	return SanitizeID(f.FieldName())
}

// Label returns the display name of the member the field is bound to. A pure
// index segment borrows the label of the closest named member before it.
func (f Field) Label() string {
	if !f.Segment.IsZero() && !f.Segment.pureIndex() {
		return f.Segment.desc.DisplayName()
	}
	for i := len(f.Prefix.segs) - 1; i >= 0; i-- {
		if seg := f.Prefix.segs[i]; !seg.pureIndex() {
			return seg.desc.DisplayName()
		}
	}
	return ""
}

// Binding memoizes the formatted name of one control across renders. The
// name is rebuilt only when the bound chain or segment changes. A Binding
// belongs to a single component and is not safe for concurrent use.
type Binding struct {
	prefix  Prefix
	segment Segment
	name    string
	valid   bool
}

func (b *Binding) FieldName(f Field) string {
	if f.Name != "" {
		return f.Name
	}
	if b.valid && b.segment == f.Segment && b.prefix.same(f.Prefix) {
		return b.name
	}
	b.prefix, b.segment = f.Prefix, f.Segment
	b.name, b.valid = f.Prefix.FieldName(f.Segment), true
	return b.name
}

func (b *Binding) FieldID(f Field) string {
	if f.ID != "" {
		return f.ID
	}
	return SanitizeID(b.FieldName(f))
}

// SanitizeID turns a field name into an HTML id. ASCII letters, digits, '-',
// '_' and ':' are kept, anything else becomes '_', and an id that does not
// start with a letter gets a leading 'z'.
func SanitizeID(name string) string {
	if name == "" {
		return ""
	}
	id := strings.Map(func(r rune) rune {
		if isIDRune(r) {
			return r
		}
		return '_'
	}, name)
	if !isASCIILetter(id[0]) {
		return "z" + id
	}
	return id
}

func isIDRune(r rune) bool {
	return r < 0x80 && (isASCIILetter(byte(r)) || ('0' <= r && r <= '9') || r == '-' || r == '_' || r == ':')
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
