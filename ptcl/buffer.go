package ptcl

import "github.com/gogpu/rastercore/scenebuf"

// Buffer is the PTCL word array: a static region (one PTCLInitialAlloc
// block per tile) followed by a bump-allocated dynamic region (spec
// ch.3). It is shared, mutable state written by coarse and read by fine.
type Buffer struct {
	words     []uint32
	staticEnd int
	bump      *Bump
}

// NewBuffer allocates a Buffer sized for a width x height tile grid plus
// dynamicCapacityWords words of bump-allocated overflow space.
func NewBuffer(width, height int, dynamicCapacityWords int) *Buffer {
	staticEnd := width * height * scenebuf.PTCLInitialAlloc
	return &Buffer{
		words:     make([]uint32, staticEnd+dynamicCapacityWords),
		staticEnd: staticEnd,
		bump:      NewBump(uint32(dynamicCapacityWords)),
	}
}

// Reset clears the buffer's words and the bump allocator, preparing for a
// fresh coarse dispatch.
func (b *Buffer) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
	b.bump.Reset()
}

// Bump returns the buffer's bump allocator.
func (b *Buffer) Bump() *Bump { return b.bump }

// OverflowErr returns ErrBumpOverflow if the bump allocator has been
// exhausted since the last Reset, or nil otherwise. Callers that need a
// hard failure on overflow (rather than gpucore's default of logging and
// reporting it via PipelineStats) can check this after a dispatch.
func (b *Buffer) OverflowErr() error {
	if b.bump.Overflowed() {
		return ErrBumpOverflow
	}
	return nil
}

// StaticEnd returns the word offset where the dynamic region begins.
func (b *Buffer) StaticEnd() int { return b.staticEnd }

// Words exposes the raw backing array, e.g. for test assertions. Callers must not resize it.
func (b *Buffer) Words() []uint32 { return b.words }

// Len returns the total capacity of the buffer in words.
func (b *Buffer) Len() int { return len(b.words) }

func (b *Buffer) read(i int) uint32  { return b.words[i] }
func (b *Buffer) write(i int, v uint32) { b.words[i] = v }
