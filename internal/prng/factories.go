package prng

import "github.com/sibench-rng/rngbattery/internal/entropy"

// Factories for the built-in generators, each seeded from a shared
// entropy.Service. Every call manufactures an independent Generator with
// its own state — the PrngFactory invariant from spec.md §3.

// SplitMix64Factory returns a Factory producing SplitMix64 generators seeded
// from svc.
func SplitMix64Factory(svc *entropy.Service) Factory {
	return func() (Generator, error) {
		return NewSplitMix64(svc), nil
	}
}

// Xorshift64StarFactory returns a Factory producing Xorshift64Star
// generators seeded from svc.
func Xorshift64StarFactory(svc *entropy.Service) Factory {
	return func() (Generator, error) {
		return NewXorshift64Star(svc), nil
	}
}

// PCG32Factory returns a Factory producing PCG32 generators seeded from svc.
func PCG32Factory(svc *entropy.Service) Factory {
	return func() (Generator, error) {
		return NewPCG32(svc), nil
	}
}

// ChaCha20Factory returns a Factory producing ChaCha20-backed generators.
// svc is passed through but not used for seeding: prng-chacha seeds itself
// (see chacha.go).
func ChaCha20Factory(svc *entropy.Service) Factory {
	return func() (Generator, error) {
		return NewChaCha20(svc)
	}
}

// Builtins lists every built-in Factory by the name the CLI accepts as its
// <module> argument to select a generator without loading a plug-in.
func Builtins(svc *entropy.Service) map[string]Factory {
	return map[string]Factory{
		"splitmix64":    SplitMix64Factory(svc),
		"xorshift64*":   Xorshift64StarFactory(svc),
		"pcg32":         PCG32Factory(svc),
		"chacha20":      ChaCha20Factory(svc),
	}
}
