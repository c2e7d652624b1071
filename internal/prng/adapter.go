package prng

// cmoduleBase adapts the mandatory part of a GenInfo (name, u01, bits32)
// to Generator.
type cmoduleBase struct {
	info  *GenInfo
	state interface{}
}

func (g *cmoduleBase) Name() string   { return g.info.Name }
func (g *cmoduleBase) U01() float64   { return g.info.GetU01(g.state) }
func (g *cmoduleBase) Bits32() uint32 { return g.info.GetBits32(g.state) }

type withBits64 struct{ *cmoduleBase }

func (g withBits64) Bits64() uint64 { return g.info.GetBits64(g.state) }

type withSelfTest struct{ *cmoduleBase }

func (g withSelfTest) SelfTest() bool { return g.info.SelfTest(g.state) }

type withBits64AndSelfTest struct {
	*cmoduleBase
	withBits64
	withSelfTest
}

// AsGenerator wraps info+state as a Generator whose concrete type exposes
// exactly the optional interfaces (Bits64Provider, SelfTester) that info's
// nullable function fields support — so a caller's type assertion against
// Bits64Provider or SelfTester reflects what the loaded module actually
// implements, not just what GenInfo happens to declare as fields.
//
// Array32/Array64/Sum32/Sum64 are not part of the plug-in ABI: a Generator
// built here never implements those interfaces, and LoadFactory (loader.go)
// offers no other path by which a loaded module can provide them.
func (gi *GenInfo) AsGenerator(state interface{}) Generator {
	base := &cmoduleBase{info: gi, state: state}
	switch {
	case gi.GetBits64 != nil && gi.SelfTest != nil:
		return withBits64AndSelfTest{
			cmoduleBase: base,
			withBits64:  withBits64{base},
			withSelfTest: withSelfTest{base},
		}
	case gi.GetBits64 != nil:
		return withBits64{base}
	case gi.SelfTest != nil:
		return withSelfTest{base}
	default:
		return base
	}
}

// Factory builds a Factory that calls InitState once per invocation,
// producing an independent Generator each time — the plug-in equivalent of
// the built-in factories in factories.go.
func (gi *GenInfo) Factory() Factory {
	return func() (Generator, error) {
		state := gi.InitState()
		return gi.AsGenerator(state), nil
	}
}
