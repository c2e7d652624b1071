// Package entropy implements the seed issuer described in spec.md §4.1: a
// process-wide, mutex-guarded source of 64-bit seeds for PRNG instances.
//
// It is deliberately NOT cryptographically hardened. It exists to hand every
// worker's PRNG an unbiased, uncorrelated starting point, not to resist an
// adversary. The mixing construction (rrmxmx avalanche + a 32-round XXTEA
// block cipher over a Weyl-sequence counter) is a direct port of
// original_source/entropy.cpp from the TestU01-threads project this battery
// runner is modeled on.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sibench-rng/rngbattery/internal/metrics"
)

// maxSeedsLog bounds the append-only audit log at 2^20 entries (spec.md §3).
const maxSeedsLog = 1 << 20

// goldenRatioConstant is the fractional bits of the golden ratio, used as the
// additive constant of the internal Weyl sequence counter.
const goldenRatioConstant uint64 = 0x9E3779B97F4A7C15

// Reference XXTEA outputs used by SelfTest; see testable properties in
// spec.md §8.
const (
	Ref0 uint64 = 0x575d8c80053704ab
	Ref1 uint64 = 0xc4cc7f1cc007378c
)

// Service is a thread-safe seed issuer. The zero value is not usable; build
// one with New.
type Service struct {
	mu       sync.Mutex
	key      [4]uint32 // 128-bit XXTEA key, packed as two 64-bit halves
	state    uint64     // Weyl-sequence counter
	seedsLog []uint64
}

// New constructs a Service, seeding its internal key from system time, a
// high-resolution clock reading and the OS's hardware entropy source —
// exactly the construction sequence in spec.md §4.1.
func New() *Service {
	var s Service
	seed0 := mixRdSeed(mixHash(uint64(time.Now().Unix())))
	seed1 := mixRdSeed(mixHash(^seed0))
	seed1 ^= mixRdSeed(mixHash(cpuClock()))

	s.key = [4]uint32{
		uint32(seed0), uint32(seed0 >> 32),
		uint32(seed1), uint32(seed1 >> 32),
	}
	s.state = uint64(time.Now().Unix())
	s.seedsLog = make([]uint64, 0, 1024)
	return &s
}

// Seed64 returns a fresh, statistically independent 64-bit seed and records
// it in the append-only seeds log (capped at 2^20 entries).
func (s *Service) Seed64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state += goldenRatioConstant
	state := mixRdSeed(mixHash(s.state))
	seed := xxtea(state, s.key)

	if len(s.seedsLog) < maxSeedsLog {
		s.seedsLog = append(s.seedsLog, seed)
	}
	metrics.RecordSeedIssued()
	return seed
}

// NSeeds returns the number of seeds recorded so far (capped at 2^20).
func (s *Service) NSeeds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seedsLog)
}

// SeedsLog returns a copy of every seed issued so far, in issue order.
func (s *Service) SeedsLog() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uint64, len(s.seedsLog))
	copy(out, s.seedsLog)
	return out
}

// Summary renders a short, human-readable line describing how many seeds
// have been issued, with the count comma-grouped by go-humanize.
func (s *Service) Summary() string {
	n := s.NSeeds()
	return fmt.Sprintf("%s seeds issued", humanize.Comma(int64(n)))
}

// SelfTest verifies the 64-bit XXTEA implementation against two fixed
// reference vectors, per spec.md §4.1 and §8. It temporarily substitutes the
// service's key, so it should only be invoked before Seed64 starts producing
// seeds workers depend on (typically right after New, as part of startup
// diagnostics).
func (s *Service) SelfTest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	savedKey := s.key
	defer func() { s.key = savedKey }()

	s.key = [4]uint32{0, 0, 0, 0}
	if xxtea(0, s.key) != Ref0 {
		return false
	}

	s.key = [4]uint32{0x08040201, 0x80402010, 0xf8fcfeff, 0x80c0e0f0}
	if xxtea(0x80c0e0f0f8fcfeff, s.key) != Ref1 {
		return false
	}
	return true
}

// mixHash is the rrmxmx avalanche hash from a modified SplitMix PRNG.
func mixHash(z uint64) uint64 {
	const m uint64 = 0x9fb21c651e98df25
	z ^= ror64(z, 49) ^ ror64(z, 24)
	z *= m
	z ^= z >> 28
	z *= m
	return z ^ (z >> 28)
}

// ror64 matches original_source/entropy.cpp's ror64 exactly: despite the
// name, it rotates left by r (x<<r | x>>(64-r)). Kept faithful to the
// original rather than "corrected", since MixHash's output is pinned by the
// SelfTest reference vectors in spec.md §8.
func ror64(x uint64, r uint) uint64 {
	return (x << r) | (x >> (64 - r))
}

// mixRdSeed XORs x with a reading from the OS hardware entropy source. In
// the original this is the RDSEED instruction; Go has no portable equivalent,
// so crypto/rand (which itself prefers RDRAND/getrandom where available) is
// the closest Go-native stand-in for "a hardware entropy instruction" — see
// DESIGN.md.
func mixRdSeed(x uint64) uint64 {
	return x ^ hwEntropy()
}

// hwEntropy busy-retries until it reads 8 bytes of OS entropy, matching
// spec.md §4.1's failure model for hw_entropy(): retried until success, no
// other failure path.
func hwEntropy() uint64 {
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err == nil {
			return binary.LittleEndian.Uint64(buf[:])
		}
	}
}

// cpuClock stands in for RDTSC: a monotonic, high-resolution counter used
// only to diversify key construction, never as a seed itself.
func cpuClock() uint64 {
	return uint64(time.Now().UnixNano())
}

// xxtea is a 32-round XXTEA encryption of a single 64-bit block under a
// 128-bit key, ported field-for-field from Entropy::Xxtea in
// original_source/entropy.cpp. The MX macro there reassigns y and z inline
// mid-expression; mx below takes them as explicit arguments evaluated in the
// same order as the C version to preserve bit-for-bit output.
func xxtea(inp uint64, key [4]uint32) uint64 {
	const delta uint32 = 0x9e3779b9
	const nrounds = 32

	v0 := uint32(inp)
	v1 := uint32(inp >> 32)
	var sum uint32
	z := v1

	for i := 0; i < nrounds; i++ {
		sum += delta
		e := (sum >> 2) & 3

		y := v1
		v0 += mx(y, z, sum, key, 0, e)
		z = v0

		y = v0
		v1 += mx(y, z, sum, key, 1, e)
		z = v1
	}

	return uint64(v0) | uint64(v1)<<32
}

// mx is the XXTEA round function: MX(p) from original_source/entropy.cpp.
func mx(y, z, sum uint32, key [4]uint32, p, e uint32) uint32 {
	return ((z>>5 ^ y<<2) + (y>>3 ^ z<<4)) ^ ((sum ^ y) + (key[(p&3)^e] ^ z))
}
