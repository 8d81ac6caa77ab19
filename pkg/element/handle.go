package element

import "github.com/go-aspen/aspen/pkg/native"

// HandleClassName is the reserved target class of the generic Handle. No
// native class uses this name, so downcasting to Handle always succeeds and
// nothing else ever matches it.
const HandleClassName = "__aspenhandle"

// Handle wraps a ref of any native class. It is the common currency for
// heterogeneous collections and the source and fallback of downcasts.
type Handle struct {
	Base
}

// TargetClassName returns the reserved sentinel class.
func (Handle) TargetClassName() string {
	return HandleClassName
}

// FromRawUnchecked wraps a ref that has already crossed FromRaw.
func (Handle) FromRawUnchecked(ref native.Ref) Handle {
	return Handle{Wrap(ref)}
}

// FromElement erases a typed wrapper into a generic Handle. It always
// succeeds and allocates nothing in the toolkit.
func FromElement(e Element) Handle {
	return Handle{Wrap(e.Raw())}
}

// Downcast converts h into a typed wrapper when the ref's live class name
// matches E's target class byte for byte. Matching is exact: native classes
// sharing an ancestor are not interchangeable unless their names are
// identical. Downcasting to Handle itself is always a successful no-op.
//
// On mismatch the second result is false and h remains a valid alias of the
// ref; failure loses nothing.
func Downcast[E Wrapper[E]](h Handle) (E, bool) {
	var e E
	target := e.TargetClassName()
	if target != HandleClassName && h.ClassName() != target {
		return e, false
	}
	// A Handle can only have been produced from a wrapper that crossed
	// FromRaw, so the destroy notify is installed and unchecked
	// construction is sound.
	return e.FromRawUnchecked(h.Raw()), true
}

// FromHandle is Downcast under the name construction code reads naturally:
//
//	dialog, ok := element.FromHandle[widgets.Dialog](h)
func FromHandle[E Wrapper[E]](h Handle) (E, bool) {
	return Downcast[E](h)
}
