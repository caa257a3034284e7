package fieldpath

import (
	"slices"
	"sync/atomic"
)

// inlineNameSize is the scratch space reserved on the stack for one name.
// Longer names spill into pooled blocks.
const inlineNameSize = 256

// Segment is one resolved step of a path: a member, optionally indexed, or a
// pure index. The zero Segment is "no segment".
type Segment struct {
	desc    *Descriptor
	index   int
	indexed bool
}

func (s Segment) Descriptor() *Descriptor {
	return s.desc
}

// Index returns the bound index and whether there is one.
func (s Segment) Index() (int, bool) {
	return s.index, s.indexed
}

func (s Segment) IsZero() bool {
	return s.desc == nil
}

// WithIndex returns a copy of s bound to index i. Handy for rows of a
// collection that share one resolved member.
func (s Segment) WithIndex(i int) Segment {
	s.index, s.indexed = i, true
	return s
}

// pureIndex reports whether s renders as just [n] and joins its predecessor
// without a separator.
func (s Segment) pureIndex() bool {
	return s.desc.Name() == ""
}

func (s Segment) insertInto(b *appendBuffer) {
	if s.indexed {
		b.InsertFront("]")
		insertInt(b, s.index)
		b.InsertFront("[")
	}
	b.InsertFront(s.desc.Name())
}

// Prefix is an immutable chain of segments addressing a nested model. The
// zero Prefix is the root.
//
// A Prefix and the first chain combined from it share one backing array;
// every other branch copies. Combining is therefore amortized O(1) and safe
// from any number of goroutines.
type Prefix struct {
	segs []Segment
	// claimed counts the slots of the backing array handed out so far. Slots
	// below it are never written again.
	claimed *atomic.Int32
}

// NewPrefix builds a chain from segs. Zero segments are skipped.
func NewPrefix(segs ...Segment) Prefix {
	return Prefix{}.CombineAll(segs...)
}

// Combine returns a new chain with seg appended. p is left untouched. A zero
// seg returns p.
func (p Prefix) Combine(seg Segment) Prefix {
	if seg.IsZero() {
		return p
	}
	n := len(p.segs)
	if p.claimed != nil && n < cap(p.segs) && p.claimed.CompareAndSwap(int32(n), int32(n+1)) {
		segs := p.segs[:n+1]
		segs[n] = seg
		return Prefix{segs: segs, claimed: p.claimed}
	}
	segs := make([]Segment, n+1, max(4, 2*(n+1)))
	copy(segs, p.segs)
	segs[n] = seg
	claimed := new(atomic.Int32)
	claimed.Store(int32(n + 1))
	return Prefix{segs: segs, claimed: claimed}
}

// CombineAll appends segs in order.
func (p Prefix) CombineAll(segs ...Segment) Prefix {
	for _, seg := range segs {
		p = p.Combine(seg)
	}
	return p
}

func (p Prefix) Len() int {
	return len(p.segs)
}

// Segments returns a copy of the chain, root first.
func (p Prefix) Segments() []Segment {
	return slices.Clone(p.segs)
}

// Name formats the chain itself.
func (p Prefix) Name() string {
	return p.FieldName(Segment{})
}

// FieldName formats the chain followed by final, e.g. Customer.Orders[2].Sku.
// Members are joined by dots and indexes render in brackets right after
// their member.
func (p Prefix) FieldName(final Segment) string {
	var scratch [inlineNameSize]byte
	b := newAppendBuffer(scratch[:])
	defer b.Release()
	p.insertInto(&b, final)
	return b.String()
}

// AppendFieldName appends what FieldName returns to dst without
// materializing a string.
func (p Prefix) AppendFieldName(dst []byte, final Segment) []byte {
	var scratch [inlineNameSize]byte
	b := newAppendBuffer(scratch[:])
	defer b.Release()
	p.insertInto(&b, final)
	return b.AppendTo(dst)
}

// insertInto writes the chain leaf to root, so every segment lands in front
// of the text formatted after it.
func (p Prefix) insertInto(b *appendBuffer, final Segment) {
	next := final
	if !next.IsZero() {
		next.insertInto(b)
	}
	for i := len(p.segs) - 1; i >= 0; i-- {
		if !next.IsZero() && !next.pureIndex() {
			b.InsertFront(".")
		}
		next = p.segs[i]
		next.insertInto(b)
	}
}

// same reports whether p and other are the same chain value.
func (p Prefix) same(other Prefix) bool {
	if len(p.segs) != len(other.segs) {
		return false
	}
	return len(p.segs) == 0 || &p.segs[0] == &other.segs[0]
}

// GetFieldName formats the field addressed by final inside p.
func GetFieldName(p Prefix, final Segment) string {
	return p.FieldName(final)
}

// FormatSegment formats seg onto an already formatted prefix. Folding it over
// a chain gives the same result as Prefix.FieldName.
func FormatSegment(seg Segment, prefix string) string {
	if seg.IsZero() {
		return prefix
	}
	var scratch [inlineNameSize]byte
	b := newAppendBuffer(scratch[:])
	defer b.Release()
	seg.insertInto(&b)
	if prefix != "" {
		if !seg.pureIndex() {
			b.InsertFront(".")
		}
		b.InsertFront(prefix)
	}
	return b.String()
}
