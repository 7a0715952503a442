// Package rng is the deterministic value generator behind every randomized
// obfuscation decision. The same seed always reproduces the same output
// program; the orchestrator reads the seed once per run for logging and
// never mutates generator state itself.
package rng

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	mathrand "math/rand/v2"
)

const hexDigits = "0123456789abcdef"

// Generator produces deterministic pseudo-random values from a string seed.
type Generator struct {
	seed string
	r    *mathrand.Rand
}

// New creates a generator. An empty seed is replaced by a fresh random one,
// so the effective seed is always observable via Seed.
func New(seed string) *Generator {
	if seed == "" {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			panic(fmt.Errorf("rng: seed entropy unavailable: %w", err))
		}
		seed = hex.EncodeToString(buf[:])
	}
	sum := sha256.Sum256([]byte(seed))
	pcg := mathrand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	)
	return &Generator{seed: seed, r: mathrand.New(pcg)}
}

// Seed returns the effective seed string.
func (g *Generator) Seed() string {
	return g.seed
}

// IntN returns a uniform value in [0, n).
func (g *Generator) IntN(n int) int {
	return g.r.IntN(n)
}

// Float returns a uniform value in [0, 1).
func (g *Generator) Float() float64 {
	return g.r.Float64()
}

// Chance reports true with probability p.
func (g *Generator) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

// HexName returns an obfuscated identifier of the form _0x1a2b3c with the
// requested number of hex digits.
func (g *Generator) HexName(digits int) string {
	if digits <= 0 {
		digits = 6
	}
	buf := make([]byte, 0, digits+3)
	buf = append(buf, '_', '0', 'x')
	for range digits {
		buf = append(buf, hexDigits[g.r.IntN(len(hexDigits))])
	}
	return string(buf)
}

// Perm returns a deterministic permutation of [0, n).
func (g *Generator) Perm(n int) []int {
	return g.r.Perm(n)
}

// Shuffle permutes n elements via swap.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}
