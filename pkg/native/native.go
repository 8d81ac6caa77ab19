// Package native defines the boundary to the handle-based native widget
// toolkit. The toolkit owns object lifetime, rendering, layout, and event
// dispatch; this package only names the entry points the binding layer
// forwards to, plus the global connection the platform driver installs.
//
// The toolkit is single-threaded: every call here, and every callback it
// fires, happens on the one thread the toolkit is bound to.
package native

import "sync"

// Ref is an opaque reference to a native toolkit object. It carries identity
// only; the toolkit owns the object's lifetime. The zero Ref is the null
// sentinel: constructors return it on failure and no live object ever has it.
type Ref uintptr

// IsNull reports whether the ref is the null sentinel.
func (r Ref) IsNull() bool { return r == 0 }

// System is the native toolkit as seen by the binding layer.
type System interface {
	// Create allocates a native object of the given class, attaching the
	// given children per toolkit rules. It returns the null Ref on failure;
	// the toolkit provides no further detail at this boundary.
	Create(class string, params map[string]any, children ...Ref) Ref

	// SetAttribute sets a string attribute. The toolkit reports no failure.
	SetAttribute(ref Ref, name, value string)

	// Attribute returns an attribute value and whether it is set. An unset
	// attribute is distinct from one set to the empty string.
	Attribute(ref Ref, name string) (string, bool)

	// ClearAttribute unsets an attribute so the class default applies.
	ClearAttribute(ref Ref, name string)

	// ResetAttribute removes an attribute from the object and, where the
	// attribute is inheritable, from its children.
	ResetAttribute(ref Ref, name string)

	// Destroy tears down the object and, recursively, its attached children.
	Destroy(ref Ref)

	// Map creates the native representation of the object and its children.
	// It returns 0 on failure, nonzero on success.
	Map(ref Ref) int

	// Unmap releases the native representation without detaching or
	// destroying the object.
	Unmap(ref Ref)

	// Show makes the object visible, mapping it first if needed.
	// It returns 0 on failure, nonzero on success.
	Show(ref Ref) int

	// Hide makes the object invisible.
	Hide(ref Ref)

	// ClassName returns the live class name; never empty for a live ref.
	ClassName(ref Ref) string

	// RegisterDestroyNotify installs fn as the destruction notification for
	// ref, replacing any previous one. The toolkit invokes it exactly once,
	// on its own thread, when the object is torn down — whether by an
	// explicit Destroy or as a child of a destroyed parent.
	RegisterDestroyNotify(ref Ref, fn func(Ref))
}

var (
	systemMu sync.RWMutex
	system   System
)

// Connect installs the toolkit implementation. The platform driver calls
// this once during initialization, before any element is constructed.
func Connect(sys System) {
	systemMu.Lock()
	system = sys
	systemMu.Unlock()
}

// Connected reports whether a toolkit is installed.
func Connected() bool {
	systemMu.RLock()
	defer systemMu.RUnlock()
	return system != nil
}

// Current returns the connected toolkit. It panics when none is connected:
// every operation in the binding is a synchronous forward to the toolkit, so
// reaching this point without one is a programmer/environment error, not a
// recoverable condition.
func Current() System {
	systemMu.RLock()
	sys := system
	systemMu.RUnlock()
	if sys == nil {
		panic("native: no toolkit connected (call native.Connect first)")
	}
	return sys
}
