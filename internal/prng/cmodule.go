package prng

// GenInfo mirrors GenInfoC from the assumed plug-in ABI described in
// original_source/include/testu01th/cinterface.h: a named bundle of
// function pointers describing how to create, destroy and sample one PRNG
// implementation. A loaded Go plugin (loader.go) is expected to export a
// function returning exactly this shape; adapter.go turns it into a
// Generator.
//
// Unlike the in-process Generator boundary (capability.go), which expresses
// optional operations as extension interfaces, this struct keeps the
// original's nullable-function-pointer shape verbatim: an externally loaded
// module may come from a different build and the only thing both sides can
// agree on ahead of time is "this slot is a function pointer, or nil."
type GenInfo struct {
	Name string

	InitState   func() interface{}
	DeleteState func(state interface{})
	GetU01      func(state interface{}) float64
	GetBits32   func(state interface{}) uint32

	// Optional slots; nil means unsupported.
	GetBits64 func(state interface{}) uint64
	SelfTest  func(state interface{}) bool
}

// GenCModule mirrors GenCModule: the three library-lifecycle entry points a
// plug-in exports (gen_initlib/gen_closelib/gen_getinfo in the original).
type GenCModule struct {
	InitLib  func() error
	CloseLib func() error
	GetInfo  func() (*GenInfo, error)
}
