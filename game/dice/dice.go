// Package dice implements the six-sided die used by the game engine.
//
// A Roller produces uniformly distributed face values in [1,6]. Random
// rollers are deterministic with respect to their seed, which makes games
// reproducible in tests; Sequence replays a fixed list of values.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

const (
	MinFace = 1
	MaxFace = 6
)

// ErrEmptySequence indicates a Sequence was built without values.
var ErrEmptySequence = errors.New("dice sequence must contain at least one value")

// ErrInvalidFace indicates a scripted value outside 1..6.
var ErrInvalidFace = errors.New("dice faces must be between 1 and 6")

// Roller yields one die face per call.
type Roller interface {
	Roll() int
}

// Random is a seeded uniform die. It is safe for concurrent use.
type Random struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewRandom returns a die seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewRandomFromEntropy returns a die seeded from crypto/rand.
func NewRandomFromEntropy() (*Random, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewRandom(seed), nil
}

// Seed returns the seed the die was created with.
func (r *Random) Seed() int64 {
	return r.seed
}

// Roll returns a face in [1,6].
func (r *Random) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(MaxFace) + MinFace
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays scripted faces in order, wrapping around at the end.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence returns a die that yields values in order.
func NewSequence(values ...int) (*Sequence, error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	for _, v := range values {
		if v < MinFace || v > MaxFace {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidFace, v)
		}
	}
	return &Sequence{values: append([]int(nil), values...)}, nil
}

// Roll returns the next scripted face.
func (s *Sequence) Roll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
