package element

import (
	"sync"

	aerrors "github.com/go-aspen/aspen/pkg/errors"
	"github.com/go-aspen/aspen/pkg/native"
)

// CallbackFunc is a wrapper-side callback closure. It receives the source
// element as a generic Handle; downcast it when the concrete type matters.
type CallbackFunc func(h Handle)

// registry is the process-wide callback store, keyed by ref identity.
// Registration and dispatch both happen on the toolkit's single thread; the
// mutex asserts that discipline under the race detector rather than
// inventing a finer one.
var registry = struct {
	mu      sync.Mutex
	entries map[native.Ref]map[string][]CallbackFunc
}{entries: make(map[native.Ref]map[string][]CallbackFunc)}

// RegisterCallback stores fn under (e, name). The entry for e's ref is
// created lazily on first registration and released exactly once, by the
// destroy notification installed when the ref first crossed FromRaw.
func RegisterCallback(e Element, name string, fn CallbackFunc) {
	if fn == nil {
		return
	}
	ref := e.Raw()
	registry.mu.Lock()
	defer registry.mu.Unlock()
	m := registry.entries[ref]
	if m == nil {
		m = make(map[string][]CallbackFunc)
		registry.entries[ref] = m
	}
	m[name] = append(m[name], fn)
}

// DispatchCallback runs every callback registered under (ref, name), in
// registration order. The platform driver calls this when the toolkit fires
// a native callback. A panicking callback is reported and does not stop the
// remaining ones.
func DispatchCallback(ref native.Ref, name string) {
	registry.mu.Lock()
	var fns []CallbackFunc
	if m := registry.entries[ref]; m != nil {
		fns = append(fns, m[name]...)
	}
	registry.mu.Unlock()

	for _, fn := range fns {
		func() {
			defer aerrors.Recover("element.DispatchCallback")
			fn(Handle{Wrap(ref)})
		}()
	}
}

// CallbackCount returns the number of callbacks registered for ref, across
// all callback names.
func CallbackCount(ref native.Ref) int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	n := 0
	for _, fns := range registry.entries[ref] {
		n += len(fns)
	}
	return n
}

// releaseCallbacks drops every callback registered for ref. It is the
// destroy notification FromRaw installs; the toolkit fires it exactly once
// per ref, and firing it for a ref with no entry is a no-op.
func releaseCallbacks(ref native.Ref) {
	registry.mu.Lock()
	delete(registry.entries, ref)
	registry.mu.Unlock()
}

// ResetForTest clears the process-wide callback registry so tests start
// from a fresh state. This should only be called from tests.
func ResetForTest() {
	registry.mu.Lock()
	registry.entries = make(map[native.Ref]map[string][]CallbackFunc)
	registry.mu.Unlock()
}
