package memzero_test

import (
	"testing"

	"nocheckin/internal/util/memzero"
)

func TestZero(t *testing.T) {
	key := []byte{1, 2, 3, 4}
	memzero.Zero(key)
	for i, b := range key {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
	memzero.Zero(nil)
}
