package prng

import "runtime/cgo"

// LegacyBridge is the "legacy-call bridge" spec.md §3 describes: a way to
// hand a Generator to code that expects the classic C-ABI shape — an opaque
// state pointer plus a pair of function pointers that take it — without
// exposing any Go-specific calling convention. Go's runtime/cgo.Handle is the
// idiomatic stand-in for the opaque state pointer here: it is an integer
// token a foreign caller can hold and pass back, without that caller ever
// dereferencing a real Go pointer.
//
// This is the one seam in the PRNG boundary shaped for an external
// statistical test library that speaks this calling convention. The
// in-repo stand-in for that library, internal/statlib, does not use it: its
// Library methods take a Generator directly.
type LegacyBridge struct {
	handle cgo.Handle
	// U01 takes the bridge's Handle and returns the wrapped generator's
	// U01() output. It is a plain function value rather than a method so the
	// call shape matches "function pointer taking an opaque state" exactly.
	U01 func(cgo.Handle) float64
	// Bits32 is the 32-bit analogue of U01.
	Bits32 func(cgo.Handle) uint32
}

// NewLegacyBridge wraps g behind a LegacyBridge. Callers must call Close when
// done with it, or the handle (and g) will never be released.
func NewLegacyBridge(g Generator) *LegacyBridge {
	return &LegacyBridge{
		handle: cgo.NewHandle(g),
		U01: func(h cgo.Handle) float64 {
			return h.Value().(Generator).U01()
		},
		Bits32: func(h cgo.Handle) uint32 {
			return h.Value().(Generator).Bits32()
		},
	}
}

// Handle returns the opaque token a foreign caller should hold and pass back
// into U01/Bits32.
func (b *LegacyBridge) Handle() cgo.Handle {
	return b.handle
}

// Close releases the underlying handle. The bridge must not be used
// afterward.
func (b *LegacyBridge) Close() {
	b.handle.Delete()
}
