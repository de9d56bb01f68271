package seq

import (
	"math/rand"
	"slices"
)

const (
	MinValue = 5
	MaxValue = 100
)

type Sequence []int

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// IsSorted reports whether s is non-decreasing.
func (s Sequence) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

// IsPermutationOf reports whether s and other hold the same multiset of values.
func (s Sequence) IsPermutationOf(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	a, b := s.Clone(), other.Clone()
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// Generate returns size values drawn uniformly from [MinValue, MaxValue].
func Generate(size int, rng *rand.Rand) Sequence {
	if size < 0 {
		size = 0
	}
	s := make(Sequence, size)
	for i := range s {
		s[i] = MinValue + rng.Intn(MaxValue-MinValue+1)
	}
	return s
}

type Counters struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Swaps       int `json:"swaps" yaml:"swaps"`
}

func (c Counters) Total() int { return c.Comparisons + c.Swaps }
