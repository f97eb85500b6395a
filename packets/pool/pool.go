// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package pool provides a size-classed, sync.Pool backed buffer allocator
// for encoded packets. Use it in high-throughput paths to reduce GC
// pressure.
//
// Usage:
//
//	var alloc pool.Allocator
//	buf, err := packets.EncodeWith(alloc, pkt)
//	// send buf...
//	pool.Release(buf)
//
// Important: never use a buffer after releasing it back to the pool.
package pool

import (
	"sync"
)

// Buffer size classes for different packet sizes.
const (
	SmallBufferSize  = 256   // acks, pings, small publishes
	MediumBufferSize = 4096  // typical PUBLISH and CONNECT
	LargeBufferSize  = 65536 // bulk payloads
)

var (
	smallBufferPool = sync.Pool{
		New: func() any {
			b := make([]byte, SmallBufferSize)
			return &b
		},
	}

	mediumBufferPool = sync.Pool{
		New: func() any {
			b := make([]byte, MediumBufferSize)
			return &b
		},
	}

	largeBufferPool = sync.Pool{
		New: func() any {
			b := make([]byte, LargeBufferSize)
			return &b
		},
	}
)

// Allocator hands out pooled buffers sized by class. It implements
// packets.Allocator and is safe for concurrent use. Sizes beyond the large
// class bypass the pools entirely.
type Allocator struct{}

// Allocate returns a writable buffer of exactly size bytes, backed by the
// smallest pool class that fits.
func (Allocator) Allocate(size int) []byte {
	var p *sync.Pool
	switch {
	case size <= SmallBufferSize:
		p = &smallBufferPool
	case size <= MediumBufferSize:
		p = &mediumBufferPool
	case size <= LargeBufferSize:
		p = &largeBufferPool
	default:
		return make([]byte, size)
	}
	return (*p.Get().(*[]byte))[:size]
}

// Release returns buf to the pool matching its capacity. Buffers that did
// not come from Allocate, or that were allocated beyond the large class, are
// left for the garbage collector.
func Release(buf []byte) {
	b := buf[:0]
	switch cap(buf) {
	case SmallBufferSize:
		smallBufferPool.Put(&b)
	case MediumBufferSize:
		mediumBufferPool.Put(&b)
	case LargeBufferSize:
		largeBufferPool.Put(&b)
	}
}
