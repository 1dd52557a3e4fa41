package gacha

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// cryptoRNG is the production source
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64() //nolint:gosec // fallback only when the OS source fails
	}
	// top 53 bits => [0, 1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultRNG returns the non-deterministic source used in production
func DefaultRNG() RandomSource { return cryptoRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source for tests and simulations
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))} //nolint:gosec // deterministic by design of the caller
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// SequenceRNG replays fixed values, wrapping around when exhausted.
// Useful for pinning exact rolls in tests.
type SequenceRNG struct {
	Values []float64
	next   int
}

func (s *SequenceRNG) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
