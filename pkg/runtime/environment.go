package runtime

// Environment is the call-frame stack. Each frame is a stack of block
// scopes; block 0 is the function scope. Lookup and mutation only ever see
// the current frame — cross-frame sharing happens exclusively through
// reference parameters and closure captures.
type Environment struct {
	frames []*frame
}

type frame struct {
	blocks []map[string]*Value
}

func NewEnvironment() *Environment {
	return &Environment{}
}

// EnterFrame pushes a fresh frame with its function scope.
func (e *Environment) EnterFrame() {
	e.frames = append(e.frames, &frame{blocks: []map[string]*Value{{}}})
}

func (e *Environment) ExitFrame() {
	e.frames = e.frames[:len(e.frames)-1]
}

// InFrame reports whether any call frame is active.
func (e *Environment) InFrame() bool { return len(e.frames) > 0 }

func (e *Environment) current() *frame {
	return e.frames[len(e.frames)-1]
}

// EnterBlock pushes a nested block scope onto the current frame.
func (e *Environment) EnterBlock() {
	f := e.current()
	f.blocks = append(f.blocks, map[string]*Value{})
}

func (e *Environment) ExitBlock() {
	f := e.current()
	f.blocks = f.blocks[:len(f.blocks)-1]
}

// DefineFuncScope binds a name in the current frame's function scope.
// Returns false if the name is already defined there.
func (e *Environment) DefineFuncScope(name string, value *Value) bool {
	scope := e.current().blocks[0]
	if _, ok := scope[name]; ok {
		return false
	}
	scope[name] = value
	return true
}

// DefineBlockScope binds a name in the innermost block, shadowing enclosing
// blocks. Returns false if the name is already defined in that block.
func (e *Environment) DefineBlockScope(name string, value *Value) bool {
	f := e.current()
	scope := f.blocks[len(f.blocks)-1]
	if _, ok := scope[name]; ok {
		return false
	}
	scope[name] = value
	return true
}

// Exists reports whether the name is visible anywhere in the current frame.
func (e *Environment) Exists(name string) bool {
	for _, block := range e.current().blocks {
		if _, ok := block[name]; ok {
			return true
		}
	}
	return false
}

// Get returns the cell bound to name, searching innermost block outward
// through the current frame only. Returns nil when unbound.
func (e *Environment) Get(name string) *Value {
	f := e.current()
	for i := len(f.blocks) - 1; i >= 0; i-- {
		if v, ok := f.blocks[i][name]; ok {
			return v
		}
	}
	return nil
}

// SetInPlace overwrites the payload of the existing cell bound to name,
// preserving the cell's identity for any alias. Returns false when unbound.
func (e *Environment) SetInPlace(name string, value *Value) bool {
	cell := e.Get(name)
	if cell == nil {
		return false
	}
	cell.Set(value)
	return true
}

// CaptureSnapshot copies every name visible in the current frame for a
// closure: primitive cells are duplicated, object and function cells get a
// fresh wrapper that still aliases the original payload. Inner blocks win
// over the names they shadow.
func (e *Environment) CaptureSnapshot() map[string]*Value {
	captured := make(map[string]*Value)
	for _, block := range e.current().blocks {
		for name, val := range block {
			captured[name] = val.Copy()
		}
	}
	return captured
}
