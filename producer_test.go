// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"code.hybscloud.com/ring"
)

func TestPushSlicePartialOnFull(t *testing.T) {
	buf := ring.New[int](4)
	prod, _ := buf.Split()

	n := prod.PushSlice([]int{1, 2, 3, 4, 5, 6})
	if n != 4 {
		t.Fatalf("PushSlice: got %d, want 4 (capped at capacity)", n)
	}
	if !prod.IsFull() {
		t.Fatalf("buffer should be full after filling to capacity")
	}
}

func TestPushIterStopsOnFull(t *testing.T) {
	buf := ring.New[int](3)
	prod, cons := buf.Split()

	seq := func(yield func(int) bool) {
		for i := 0; i < 10; i++ {
			if !yield(i) {
				return
			}
		}
	}
	n := prod.PushIter(seq)
	if n != 3 {
		t.Fatalf("PushIter: got %d, want 3", n)
	}

	for i := 0; i < 3; i++ {
		v, err := cons.TryPop()
		if err != nil || v != i {
			t.Fatalf("TryPop(%d): got (%d, %v), want (%d, nil)", i, v, err, i)
		}
	}
}

func TestVacantSlicesAndAdvance(t *testing.T) {
	buf := ring.New[int](4)
	prod, cons := buf.Split()

	left, _ := prod.VacantSlices()
	if len(left) != 4 {
		t.Fatalf("VacantSlices: got %d vacant, want 4", len(left))
	}
	copy(left, []int{10, 20, 30})
	prod.Advance(3)

	for i, want := range []int{10, 20, 30} {
		v, err := cons.TryPop()
		if err != nil || v != want {
			t.Fatalf("TryPop(%d): got (%d, %v), want (%d, nil)", i, v, err, want)
		}
	}
}

func TestAdvancePanicsOverLimit(t *testing.T) {
	buf := ring.New[int](4)
	prod, _ := buf.Split()

	defer func() {
		if recover() == nil {
			t.Fatalf("Advance beyond VacantLen should panic")
		}
	}()
	prod.Advance(5)
}
