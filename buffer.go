// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

// MemoryBuffer is a bounded [Sink] over caller-provided storage.
//
// The buffer never grows. Bytes put after the storage is full are discarded
// without any signal, so a MemoryBuffer of capacity 4 asked to hold "12345"
// keeps "1234".
//
// Flush hands the bytes written since the last successful flush to the
// write callback. The contents stay in the buffer either way and can be read
// back with Bytes until Reset is called.
//
// Example:
//
//	var storage [diag.CaptureSize]byte
//	buf := diag.NewMemoryBuffer(storage[:], diag.NoWrite)
//	diag.NewStream(buf).Emit("x=").Emit(42)
//	// buf.Bytes() == []byte("x=42")
type MemoryBuffer struct {
	storage []byte
	n       int
	flushed int
	write   WriteFunc
}

// NewMemoryBuffer creates a MemoryBuffer backed by storage.
// The capacity is len(storage). A nil write is treated as [NoWrite].
func NewMemoryBuffer(storage []byte, write WriteFunc) *MemoryBuffer {
	if write == nil {
		write = NoWrite
	}
	return &MemoryBuffer{storage: storage, write: write}
}

// Put appends c, or drops it if the buffer is full.
func (b *MemoryBuffer) Put(c byte) {
	if b.n >= len(b.storage) {
		return
	}
	b.storage[b.n] = c
	b.n++
}

// Flush offers the unflushed bytes to the write callback.
func (b *MemoryBuffer) Flush() {
	if b.flushed == b.n {
		return
	}
	if b.write(b.storage[b.flushed:b.n]) {
		b.flushed = b.n
	}
}

// Bytes returns the retained contents.
// The slice aliases the storage and is valid until the next Put or Reset.
func (b *MemoryBuffer) Bytes() []byte {
	return b.storage[:b.n]
}

// Len returns the number of retained bytes.
func (b *MemoryBuffer) Len() int {
	return b.n
}

// Cap returns the capacity.
func (b *MemoryBuffer) Cap() int {
	return len(b.storage)
}

// Reset discards the contents.
func (b *MemoryBuffer) Reset() {
	b.n = 0
	b.flushed = 0
}
