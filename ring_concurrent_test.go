// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// Ring publishes bytes through atomix acquire-release orderings, which the
// race detector cannot observe. These tests are excluded from race runs.

package diag_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"code.hybscloud.com/diag"
)

func TestRingConcurrentPump(t *testing.T) {
	const lines = 2000

	r := diag.NewRing(256)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- r.Pump(ctx, &out)
	}()

	s := diag.NewStream(r)
	syncCtx, syncCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer syncCancel()
	for i := range lines {
		s.Emit("n=").Emit(i).Emit(diag.FlushLine)
		// Keep the producer within capacity so nothing is dropped
		if i%8 == 7 {
			if err := r.Sync(syncCtx); err != nil {
				t.Fatalf("Sync: %v", err)
			}
		}
	}
	if err := r.Sync(syncCtx); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Pump: got %v, want context.Canceled", err)
	}

	if r.Dropped() != 0 {
		t.Fatalf("Dropped: got %d, want 0", r.Dropped())
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(got) != lines {
		t.Fatalf("lines: got %d, want %d", len(got), lines)
	}
	for i, line := range got {
		if want := "n=" + strconv.Itoa(i); line != want {
			t.Fatalf("line %d: got %q, want %q", i, line, want)
		}
	}
}
