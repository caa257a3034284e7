package fieldpath

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// maxIntLen is the longest decimal form of a 64-bit integer
// ("-9223372036854775808" and "18446744073709551615").
const maxIntLen = 20

// appendBuffer builds a string back to front. Fragments are copied into the
// caller's scratch space until it runs out; after that the content moves to
// pooled overflow blocks. Only the newest block has free headroom, every
// older block is full.
//
// scratch is never reassigned and the block chain hangs off a separate
// overflow value, so the caller's scratch array can stay on its stack.
//
// An appendBuffer belongs to a single call and must be released exactly once.
type appendBuffer struct {
	scratch []byte
	next    int       // content starts here in the active region
	n       int       // total bytes written
	ov      *overflow // nil while the scratch suffices
}

type overflow struct {
	newest *block
}

type block struct {
	data  []byte
	older *block
}

func newAppendBuffer(scratch []byte) appendBuffer {
	return appendBuffer{scratch: scratch, next: len(scratch)}
}

func (b *appendBuffer) Len() int {
	return b.n
}

func (b *appendBuffer) Empty() bool {
	return b.n == 0
}

// active returns the region currently being filled.
func (b *appendBuffer) active() []byte {
	if b.ov == nil {
		return b.scratch
	}
	return b.ov.newest.data
}

func (b *appendBuffer) InsertFront(s string) {
	b.n += len(s)
	buf := b.active()
	start := b.next - len(s)
	if start >= 0 {
		copy(buf[start:], s)
		b.next = start
		return
	}
	if b.ov == nil {
		b.ov, b.next = grow(buf[b.next:], s)
		return
	}
	b.next = b.ov.spill(s, -start)
}

func (b *appendBuffer) insertFrontBytes(p []byte) {
	// p never exceeds maxIntLen, so the conversion uses a stack temporary.
	b.InsertFront(string(p))
}

// grow handles the first overflow: content written so far is copied once into
// a block large enough for s plus headroom. It returns the new chain and the
// start of the content in it.
func grow(content []byte, s string) (*overflow, int) {
	data := acquireBlock(len(content) + max(minBlockSize, 2*len(s)))
	end := len(data) - len(content)
	copy(data[end:], content)
	end -= len(s)
	copy(data[end:], s)
	return &overflow{newest: &block{data: data}}, end
}

// spill handles later overflows. The tail of s fills the newest block down to
// index 0, the remaining head goes into a fresh block linked in front of it.
// Placed content is never copied again.
func (o *overflow) spill(s string, remaining int) int {
	copy(o.newest.data, s[remaining:])
	data := acquireBlock(max(minBlockSize, 2*remaining))
	o.newest = &block{data: data, older: o.newest}
	start := len(data) - remaining
	copy(data[start:], s[:remaining])
	return start
}

func (o *overflow) release() {
	for blk := o.newest; blk != nil; blk = blk.older {
		releaseBlock(blk.data)
	}
	o.newest = nil
}

// insertInt formats v into a local scratch array, so the common case does not
// allocate.
func insertInt[T constraints.Integer](b *appendBuffer, v T) {
	var scratch [maxIntLen]byte
	var out []byte
	if v < 0 {
		out = strconv.AppendInt(scratch[:0], int64(v), 10)
	} else {
		out = strconv.AppendUint(scratch[:0], uint64(v), 10)
	}
	b.insertFrontBytes(out)
}

// String materializes the content. Without overflow this is a single copy of
// the scratch tail; with overflow the block chain is joined into one
// right-sized allocation.
func (b *appendBuffer) String() string {
	if b.ov == nil {
		return string(b.scratch[b.next:])
	}
	var sb strings.Builder
	sb.Grow(b.n)
	sb.Write(b.ov.newest.data[b.next:])
	for blk := b.ov.newest.older; blk != nil; blk = blk.older {
		sb.Write(blk.data)
	}
	return sb.String()
}

// AppendTo appends the content to dst without joining the overflow blocks
// into an intermediate string.
func (b *appendBuffer) AppendTo(dst []byte) []byte {
	dst = slices.Grow(dst, b.n)
	dst = append(dst, b.active()[b.next:]...)
	if b.ov == nil {
		return dst
	}
	for blk := b.ov.newest.older; blk != nil; blk = blk.older {
		dst = append(dst, blk.data...)
	}
	return dst
}

// Release returns every overflow block to the pool. It is a no-op when the
// scratch space was enough, and safe to call more than once.
func (b *appendBuffer) Release() {
	if b.ov != nil {
		b.ov.release()
	}
	*b = appendBuffer{}
}
