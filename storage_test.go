// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"code.hybscloud.com/ring"
)

func TestStaticStorageSharesCallerSlice(t *testing.T) {
	backing := make([]int, 4)
	storage := ring.NewStaticStorage(backing)
	buf := ring.FromRawParts(storage, 0, 0, true)
	prod, _ := buf.Split()

	for i := 0; i < 4; i++ {
		if err := prod.TryPush(i + 1); err != nil {
			t.Fatalf("TryPush(%d): %v", i, err)
		}
	}
	for i, want := range []int{1, 2, 3, 4} {
		if backing[i] != want {
			t.Fatalf("backing[%d]: got %d, want %d (static storage should alias caller's slice)", i, backing[i], want)
		}
	}
}

func TestByteTierBySize(t *testing.T) {
	cases := []struct {
		size int
		want ring.ByteTier
	}{
		{1, ring.ByteTierIDPico},
		{ring.ByteTierPico, ring.ByteTierIDPico},
		{ring.ByteTierPico + 1, ring.ByteTierIDNano},
		{ring.ByteTierMedium, ring.ByteTierIDMedium},
		{ring.ByteTierMedium + 1, ring.ByteTierIDMedium},
	}
	for _, c := range cases {
		if got := ring.ByteTierBySize(c.size); got != c.want {
			t.Fatalf("ByteTierBySize(%d): got %v, want %v", c.size, got, c.want)
		}
	}
}

func TestNewStaticByteStorageCapacity(t *testing.T) {
	storage := ring.NewStaticByteStorage(ring.ByteTierIDMicro)
	if storage.Capacity() != ring.ByteTierMicro {
		t.Fatalf("Capacity: got %d, want %d", storage.Capacity(), ring.ByteTierMicro)
	}
}
