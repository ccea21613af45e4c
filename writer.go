// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import "io"

// WriterSink adapts an [io.Writer] to a [Sink] for hosted environments.
//
// Bytes are staged in a fixed array and written through when the array is
// full or on Flush. The first error returned by the writer is kept (see Err)
// and every byte after it is dropped; the Stream writing to the sink never
// sees the error.
type WriterSink struct {
	w     io.Writer
	err   error
	n     int
	stage [128]byte
}

// NewWriterSink creates a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Put stages c, writing the staged bytes through first if the stage is full.
func (ws *WriterSink) Put(c byte) {
	if ws.err != nil {
		return
	}
	if ws.n == len(ws.stage) {
		ws.Flush()
		if ws.err != nil {
			return
		}
	}
	ws.stage[ws.n] = c
	ws.n++
}

// Flush writes the staged bytes.
func (ws *WriterSink) Flush() {
	if ws.err != nil || ws.n == 0 {
		return
	}
	_, ws.err = ws.w.Write(ws.stage[:ws.n])
	ws.n = 0
}

// Err returns the first write error, if any.
func (ws *WriterSink) Err() error {
	return ws.err
}
