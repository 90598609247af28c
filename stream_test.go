// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"code.hybscloud.com/ring"
)

// readAllFrom drives ReadFrom one call at a time until want bytes have
// been pulled from r, the way a caller must when a single ReadFrom call
// only ever moves one contiguous sub-slice.
func readAllFrom(t *testing.T, prod *ring.Producer[byte], r io.Reader, want int) {
	t.Helper()
	total := 0
	for total < want {
		n, err := ring.ReadFrom(prod, r, want-total)
		if err != nil {
			t.Fatalf("ReadFrom: %v", err)
		}
		if n == 0 {
			t.Fatalf("ReadFrom made no progress with %d of %d bytes left", want-total, want)
		}
		total += n
	}
}

// writeAllInto drives WriteInto one call at a time until want bytes have
// been pushed to w, symmetric to readAllFrom.
func writeAllInto(t *testing.T, cons *ring.Consumer[byte], w io.Writer, want int) {
	t.Helper()
	total := 0
	for total < want {
		n, err := ring.WriteInto(cons, w, want-total)
		if err != nil {
			t.Fatalf("WriteInto: %v", err)
		}
		if n == 0 {
			t.Fatalf("WriteInto made no progress with %d of %d bytes left", want-total, want)
		}
		total += n
	}
}

func TestReadFromFillsVacantRegion(t *testing.T) {
	buf := ring.New[byte](8)
	prod, cons := buf.Split()

	n, err := ring.ReadFrom(prod, strings.NewReader("hello world"), 0)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if n != 8 {
		t.Fatalf("ReadFrom: got %d bytes, want 8 (capped at capacity)", n)
	}

	dst := make([]byte, 8)
	got := cons.PopSlice(dst)
	if got != 8 || string(dst) != "hello wo" {
		t.Fatalf("PopSlice: got %d bytes %q, want 8 bytes \"hello wo\"", got, dst[:got])
	}
}

func TestReadFromReturnsWouldBlockOnFullBuffer(t *testing.T) {
	buf := ring.New[byte](4)
	prod, _ := buf.Split()
	prod.PushSlice([]byte("abcd"))

	n, err := ring.ReadFrom(prod, strings.NewReader("more"), 0)
	if n != 0 || !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("ReadFrom on full buffer: got (%d, %v), want (0, ErrWouldBlock)", n, err)
	}
}

func TestWriteIntoDrainsOccupiedRegion(t *testing.T) {
	buf := ring.New[byte](16)
	prod, cons := buf.Split()
	prod.PushSlice([]byte("roundtrip"))

	var out bytes.Buffer
	n, err := ring.WriteInto(cons, &out, 0)
	if err != nil {
		t.Fatalf("WriteInto: %v", err)
	}
	if n != 9 || out.String() != "roundtrip" {
		t.Fatalf("WriteInto: got (%d, %q), want (9, \"roundtrip\")", n, out.String())
	}
	if !cons.IsEmpty() {
		t.Fatalf("buffer should be empty after WriteInto drains it")
	}
}

func TestByteRoundTripAcrossWrap(t *testing.T) {
	buf := ring.New[byte](4)
	prod, cons := buf.Split()

	var out bytes.Buffer
	for round := 0; round < 5; round++ {
		msg := []byte{byte(round), byte(round + 1), byte(round + 2)}
		readAllFrom(t, prod, bytes.NewReader(msg), len(msg))
		writeAllInto(t, cons, &out, len(msg))
	}

	want := []byte{0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4, 5, 4, 5, 6}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("round-tripped bytes: got %v, want %v", out.Bytes(), want)
	}
}

func TestTransferBetweenBuffers(t *testing.T) {
	src := ring.New[int](8)
	srcProd, srcCons := src.Split()
	dst := ring.New[int](8)
	dstProd, dstCons := dst.Split()

	srcProd.PushSlice([]int{1, 2, 3, 4, 5})
	n := ring.Transfer(srcCons, dstProd, 0)
	if n != 5 {
		t.Fatalf("Transfer: got %d, want 5", n)
	}
	if !srcCons.IsEmpty() {
		t.Fatalf("source should be drained after Transfer")
	}

	got := make([]int, 5)
	if c := dstCons.PopSlice(got); c != 5 {
		t.Fatalf("PopSlice after Transfer: got %d elements, want 5", c)
	}
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("element %d: got %d, want %d", i, v, i+1)
		}
	}
}

func TestTransferCappedByDestinationCapacity(t *testing.T) {
	src := ring.New[int](8)
	srcProd, srcCons := src.Split()
	dst := ring.New[int](3)
	dstProd, _ := dst.Split()

	srcProd.PushSlice([]int{1, 2, 3, 4, 5})
	n := ring.Transfer(srcCons, dstProd, 0)
	if n != 3 {
		t.Fatalf("Transfer capped by destination: got %d, want 3", n)
	}
	if srcCons.OccupiedLen() != 2 {
		t.Fatalf("source remaining: got %d, want 2", srcCons.OccupiedLen())
	}
}
