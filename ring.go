// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import (
	"context"
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Ring is a bounded single-producer single-consumer byte [Sink].
//
// The producer side (Put and Flush) is driven by a [Stream]. Put stages a
// byte privately; Flush publishes every staged byte to the consumer at once,
// so a consumer never observes half of a line written between two flushes.
// When the ring is full, Put drops the byte and counts it (see Dropped).
//
// The consumer side (Read, Pump) runs on another goroutine, typically a
// console or UART drain loop.
//
// Based on Lamport's ring buffer with cached index optimization.
// Producer and consumer each cache the other's index, reducing cross-core
// cache line traffic.
//
// Example:
//
//	r := diag.NewRing(1024)
//	go r.Pump(ctx, os.Stderr)
//
//	s := diag.NewStream(r)
//	s.Emit("boot: ").Emit(diag.Hexadecimal).Emit(addr).Emit(diag.FlushLine)
type Ring struct {
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Published by Flush
	_          pad
	cachedHead uint64 // Producer's cached view of head
	staged     uint64 // Producer's unpublished tail
	_          pad
	dropped    atomix.Uint64
	_          pad
	buffer     []byte
	mask       uint64
}

// NewRing creates a Ring.
// Capacity rounds up to the next power of 2.
//
// Panics if capacity < 2.
func NewRing(capacity int) *Ring {
	if capacity < 2 {
		panic("diag: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &Ring{
		buffer: make([]byte, n),
		mask:   n - 1,
	}
}

// Put stages c (producer only). Drops c if the ring is full.
func (r *Ring) Put(c byte) {
	staged := r.staged
	if staged-r.cachedHead > r.mask {
		r.cachedHead = r.head.LoadAcquire()
		if staged-r.cachedHead > r.mask {
			r.dropped.Add(1)
			return
		}
	}

	r.buffer[staged&r.mask] = c
	r.staged = staged + 1
}

// Flush publishes the staged bytes to the consumer (producer only).
func (r *Ring) Flush() {
	r.tail.StoreRelease(r.staged)
}

// Read copies published bytes into p (consumer only).
// Returns (0, ErrWouldBlock) if nothing is published.
func (r *Ring) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	head := r.head.LoadRelaxed()
	if head >= r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head >= r.cachedTail {
			return 0, ErrWouldBlock
		}
	}

	n := 0
	for head < r.cachedTail && n < len(p) {
		p[n] = r.buffer[head&r.mask]
		head++
		n++
	}
	r.head.StoreRelease(head)
	return n, nil
}

// Pump copies published bytes to w until ctx is done (consumer only).
//
// Pump waits with [iox.Backoff] while the ring is empty. ctx is checked on
// every iteration. Once it is done, the bytes published up to that point are
// written before returning ctx.Err(). A write error from w stops the pump
// and is returned.
func (r *Ring) Pump(ctx context.Context, w io.Writer) error {
	var scratch [256]byte
	backoff := iox.Backoff{}
	for {
		if err := ctx.Err(); err != nil {
			if werr := r.drain(w, scratch[:]); werr != nil {
				return werr
			}
			return err
		}

		n, err := r.Read(scratch[:])
		if err != nil {
			backoff.Wait()
			continue
		}
		if _, err := w.Write(scratch[:n]); err != nil {
			return err
		}
		backoff.Reset()
	}
}

// drain writes the bytes published when it is called. Bytes published
// afterwards are left for the next consumer call.
func (r *Ring) drain(w io.Writer, scratch []byte) error {
	target := r.tail.LoadAcquire()
	for r.head.LoadRelaxed() < target {
		n, err := r.Read(scratch)
		if err != nil {
			return nil
		}
		if _, err := w.Write(scratch[:n]); err != nil {
			return err
		}
	}
	return nil
}

// Sync waits until the consumer has read every published byte
// (producer only). Returns ctx.Err() if ctx is done first.
func (r *Ring) Sync(ctx context.Context) error {
	target := r.tail.LoadRelaxed()
	sw := spin.Wait{}
	for r.head.LoadAcquire() < target {
		if err := ctx.Err(); err != nil {
			return err
		}
		sw.Once()
	}
	return nil
}

// Dropped returns the number of bytes discarded because the ring was full.
func (r *Ring) Dropped() uint64 {
	return r.dropped.Load()
}

// Cap returns the ring capacity in bytes.
func (r *Ring) Cap() int {
	return int(r.mask + 1)
}
