// Package pool provides sync.Pool backed allocators for the scratch
// buffers used while scanning.
package pool

import "sync"

const defaultCapacity = 64

type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: allocByteSlice,
	},
}

func allocByteSlice() interface{} {
	b := make([]byte, 0, defaultCapacity)
	return &b
}

// ByteSlice returns the shared byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

// Get returns an empty slice with at least the default capacity.
func (p *ByteSlicePool) Get() []byte {
	return p.GetCapacity(defaultCapacity)
}

// GetCapacity returns an empty slice with at least n bytes of capacity.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := *(p.pool.Get().(*[]byte))
	if cap(b) < n {
		b = make([]byte, 0, n)
	}
	return b[:0]
}

// Put returns b to the pool. The caller must not use b afterwards.
func (p *ByteSlicePool) Put(b []byte) {
	if b == nil {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}
