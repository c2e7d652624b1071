package prng

import (
	"fmt"
	"plugin"
)

// LoadModule opens a compiled Go plugin at path and resolves its three
// lifecycle entry points — the Go-native equivalent of dlopen/LoadLibrary
// resolving gen_initlib/gen_closelib/gen_getinfo in the original C ABI
// (original_source/include/testu01th/cinterface.h). The standard library's
// plugin package is the only thing in the whole pack that can stand in for
// that OS-level loading capability; no third-party library replaces it —
// see DESIGN.md.
//
// A module built this way must export three functions with these exact
// signatures:
//
//	func InitLib() error
//	func CloseLib() error
//	func GetInfo() (*prng.GenInfo, error)
//
// plugin.Open requires the plugin and the host binary to be built from the
// same Go toolchain version, and is Linux/macOS/FreeBSD-only — both
// limitations inherited from the standard library, not introduced here.
func LoadModule(path string) (*GenCModule, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prng: opening plugin %q: %w", path, err)
	}

	initSym, err := p.Lookup("InitLib")
	if err != nil {
		return nil, fmt.Errorf("prng: plugin %q missing InitLib: %w", path, err)
	}
	closeSym, err := p.Lookup("CloseLib")
	if err != nil {
		return nil, fmt.Errorf("prng: plugin %q missing CloseLib: %w", path, err)
	}
	infoSym, err := p.Lookup("GetInfo")
	if err != nil {
		return nil, fmt.Errorf("prng: plugin %q missing GetInfo: %w", path, err)
	}

	initFn, ok := initSym.(func() error)
	if !ok {
		return nil, fmt.Errorf("prng: plugin %q: InitLib has the wrong signature", path)
	}
	closeFn, ok := closeSym.(func() error)
	if !ok {
		return nil, fmt.Errorf("prng: plugin %q: CloseLib has the wrong signature", path)
	}
	infoFn, ok := infoSym.(func() (*GenInfo, error))
	if !ok {
		return nil, fmt.Errorf("prng: plugin %q: GetInfo has the wrong signature", path)
	}

	return &GenCModule{InitLib: initFn, CloseLib: closeFn, GetInfo: infoFn}, nil
}

// LoadFactory opens path, runs its lifecycle InitLib/GetInfo, and returns a
// ready-to-use Factory plus a closer that must be called (typically via
// defer) once the battery run using it is finished, to invoke CloseLib.
func LoadFactory(path string) (factory Factory, closer func() error, err error) {
	mod, err := LoadModule(path)
	if err != nil {
		return nil, nil, err
	}
	if err := mod.InitLib(); err != nil {
		return nil, nil, fmt.Errorf("prng: InitLib for %q failed: %w", path, err)
	}
	gi, err := mod.GetInfo()
	if err != nil {
		return nil, nil, fmt.Errorf("prng: GetInfo for %q failed: %w", path, err)
	}
	return gi.Factory(), mod.CloseLib, nil
}
