package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Default is the entropy source used when none is injected.
var Default io.Reader = rand.Reader

// UniformInt returns a uniform integer in [0, n).
// Integer-only rejection sampling over big-endian uint32 words, unbiased
// assuming the byte stream is uniform.
func UniformInt(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("the range size should be positive")
	}
	if uint64(n) > 1<<32 {
		return 0, errors.New("the range size should not exceed 2^32")
	}

	// limit = floor(2^32 / n) * n
	limit := (uint64(1) << 32) / uint64(n) * uint64(n)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("error fetching random bytes: %w", err)
		}

		x := binary.BigEndian.Uint32(buf[:])
		if uint64(x) < limit {
			return int(uint64(x) % uint64(n)), nil
		}
		// reject and retry
	}
}

// Shuffle permutes n elements with Fisher–Yates, drawing each swap index
// from r. Every permutation is equally likely when r is uniform.
func Shuffle(r io.Reader, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := UniformInt(r, i+1)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}
