package rng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// uint32CounterReader emits an infinite stream of big-endian uint32 values: 0,1,2,3,...
type uint32CounterReader struct {
	next uint32
	buf  [4]byte
	off  int
}

func (r *uint32CounterReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.off == 0 {
			binary.BigEndian.PutUint32(r.buf[:], r.next)
			r.next++
		}
		copied := copy(p[n:], r.buf[r.off:])
		n += copied
		r.off = (r.off + copied) % 4
	}
	return n, nil
}

func words(vs ...uint32) io.Reader {
	var b bytes.Buffer
	for _, v := range vs {
		binary.Write(&b, binary.BigEndian, v)
	}
	return &b
}

func TestUniformInt_PerfectUniformOverCounter(t *testing.T) {
	r := &uint32CounterReader{}
	counts := make([]int, 52)

	draws := 52 * 100
	for i := 0; i < draws; i++ {
		v, err := UniformInt(r, 52)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[v]++
	}

	for v, c := range counts {
		if c != 100 {
			t.Fatalf("value %d appeared %d times, want 100", v, c)
		}
	}
}

func TestUniformInt_RejectsAboveLimit(t *testing.T) {
	// For n=3, limit = floor(2^32/3)*3 = 4294967295, so 0xFFFFFFFF is rejected.
	r := words(0xFFFFFFFF, 5)
	v, err := UniformInt(r, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Fatalf("UniformInt = %d, want 2", v)
	}
}

func TestUniformInt_Errors(t *testing.T) {
	if _, err := UniformInt(&uint32CounterReader{}, 0); err == nil {
		t.Fatal("expected error for n=0")
	}
	_, err := UniformInt(bytes.NewReader([]byte{1, 2}), 10)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	xs := make([]int, 52)
	for i := range xs {
		xs[i] = i
	}
	err := Shuffle(Default, len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int]bool)
	for _, x := range xs {
		if seen[x] {
			t.Fatalf("duplicate element %d", x)
		}
		seen[x] = true
	}
	if len(seen) != 52 {
		t.Fatalf("got %d unique elements, want 52", len(seen))
	}
}

func TestShuffle_ZeroWordsIsRotation(t *testing.T) {
	// All-zero entropy always picks j=0, so each step swaps xs[i] with xs[0].
	xs := []int{0, 1, 2, 3}
	err := Shuffle(bytes.NewReader(make([]byte, 64)), len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, 0}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("xs = %v, want %v", xs, want)
		}
	}
}
