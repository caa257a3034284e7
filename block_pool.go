package fieldpath

import (
	"math/bits"
	"sync"
)

// Overflow blocks come in power-of-two size classes from 1 KiB to 1 MiB.
// Larger requests are allocated directly and dropped on release.
const (
	minBlockShift = 10
	maxBlockShift = 20
	minBlockSize  = 1 << minBlockShift
)

// sync.Pool keeps per-P free lists, so concurrent renders do not contend on
// a single lock.
var blockPools [maxBlockShift - minBlockShift + 1]sync.Pool

func acquireBlock(n int) []byte {
	blocksAcquired.Inc()
	class := blockClass(n)
	if class < 0 {
		return make([]byte, n)
	}
	if p, ok := blockPools[class].Get().(*[]byte); ok {
		return *p
	}
	return make([]byte, 1<<(class+minBlockShift))
}

func releaseBlock(b []byte) {
	blocksReleased.Inc()
	class := blockClass(cap(b))
	if class < 0 || cap(b) != 1<<(class+minBlockShift) {
		return
	}
	b = b[:cap(b)]
	blockPools[class].Put(&b)
}

// blockClass returns the smallest size class holding n bytes, or -1 when n
// is above the largest class.
func blockClass(n int) int {
	if n <= minBlockSize {
		return 0
	}
	shift := bits.Len(uint(n - 1))
	if shift > maxBlockShift {
		return -1
	}
	return shift - minBlockShift
}
