// Package element implements the typed-handle layer over the native toolkit.
//
// Every toolkit object is physically the same opaque ref, distinguished at
// runtime by a class-name string. This package gives each class a distinct
// Go wrapper type, lets any wrapper be erased to the generic Handle for
// heterogeneous use, and converts back with a runtime class check. It also
// owns the per-ref callback registry, released exactly once when the toolkit
// reports an object's destruction.
//
// Wrappers are plain copyable values. Copying one duplicates the alias, not
// the native object: all copies reference the same ref with equal privilege,
// and none of them owns it. An object's life ends only through Destroy (or
// its parent's), never because a wrapper value went out of scope.
package element

import (
	"errors"

	aerrors "github.com/go-aspen/aspen/pkg/errors"
	"github.com/go-aspen/aspen/pkg/native"
)

// Sentinel errors surfaced from native status codes.
var (
	// ErrMapFailed is returned when the toolkit reports map failure.
	ErrMapFailed = errors.New("element: native map failed")

	// ErrShowFailed is returned when the toolkit reports show failure.
	ErrShowFailed = errors.New("element: native show failed")
)

// Element is the capability every typed wrapper satisfies.
type Element interface {
	// Raw returns the native ref without transferring ownership.
	Raw() native.Ref

	// TargetClassName returns the native class name this wrapper type is
	// statically bound to. For the generic Handle it is the reserved
	// HandleClassName sentinel.
	TargetClassName() string
}

// Wrapper constrains a wrapper type to one constructible from a raw ref.
//
// FromRawUnchecked wraps a ref with no checks and no bookkeeping. It must
// only be given refs whose live class matches the wrapper's target class and
// that have already passed through FromRaw at least once; Downcast relies on
// both to rewrap without reinstalling the destroy notify.
type Wrapper[E any] interface {
	Element
	FromRawUnchecked(ref native.Ref) E
}

// FromRaw is the sole safe entry point for refs freshly produced by a native
// constructor. It panics on the null ref — proceeding would defer a null
// dereference into the toolkit — then installs the destroy notification that
// releases this layer's callback bookkeeping, and builds the wrapper.
//
// The notify is installed here and only here, so however many wrapper
// values are later made from the ref, the hook exists exactly once.
func FromRaw[E Wrapper[E]](ref native.Ref) E {
	if ref.IsNull() {
		panic("element: FromRaw called with a null native ref")
	}
	native.Current().RegisterDestroyNotify(ref, releaseCallbacks)
	var e E
	return e.FromRawUnchecked(ref)
}

// Base carries the single native ref every wrapper holds and implements the
// operations shared by all element kinds. Wrapper types embed it and add
// their class identity.
type Base struct {
	ref native.Ref
}

// Wrap returns a Base for ref. Building block for FromRawUnchecked
// implementations; it performs no checks.
func Wrap(ref native.Ref) Base {
	return Base{ref: ref}
}

// Raw returns the native ref without transferring ownership.
func (b Base) Raw() native.Ref {
	return b.ref
}

// SetAttribute sets a string attribute on the element.
// The toolkit reports no failure for attribute writes.
func (b Base) SetAttribute(name, value string) {
	native.Current().SetAttribute(b.ref, name, value)
}

// Attribute returns an attribute value and whether it is set. Unset is
// distinct from set-to-empty, mirroring the toolkit's null-pointer
// convention for absent values.
func (b Base) Attribute(name string) (string, bool) {
	return native.Current().Attribute(b.ref, name)
}

// ClearAttribute unsets an attribute so the class default applies.
func (b Base) ClearAttribute(name string) {
	native.Current().ClearAttribute(b.ref, name)
}

// ResetAttribute removes an attribute from the element and, where the
// attribute is inheritable, from its children.
func (b Base) ResetAttribute(name string) {
	native.Current().ResetAttribute(b.ref, name)
}

// Map creates the native representation of the element and its children.
// The element must be attached to a mapped container, except dialogs.
func (b Base) Map() error {
	return b.statusOp("element.Map", native.Current().Map(b.ref), ErrMapFailed)
}

// Unmap releases the native representation of the element and its children.
// It neither detaches the element from its parent nor destroys it.
func (b Base) Unmap() {
	native.Current().Unmap(b.ref)
}

// Show makes the element visible, mapping it first if needed.
func (b Base) Show() error {
	return b.statusOp("element.Show", native.Current().Show(b.ref), ErrShowFailed)
}

// Hide makes the element invisible.
func (b Base) Hide() {
	native.Current().Hide(b.ref)
}

// Destroy tears down the native object and, recursively, its attached
// children. This ends the ref's life for every alias of it; the destroy
// notification installed at FromRaw releases the callback registrations.
func (b Base) Destroy() {
	native.Current().Destroy(b.ref)
}

// ClassName queries the live class name from the toolkit. This is the
// runtime tag, not the compile-time target; Downcast compares the two.
func (b Base) ClassName() string {
	return native.Current().ClassName(b.ref)
}

// statusOp converts a native status code into an error result.
// 0 means failure; the failure is reported and returned, never swallowed,
// and never retried here.
func (b Base) statusOp(op string, status int, sentinel error) error {
	if status != 0 {
		return nil
	}
	aerrors.Report(&aerrors.AspenError{
		Op:    op,
		Kind:  aerrors.KindNative,
		Class: b.ClassName(),
		Err:   sentinel,
	})
	return sentinel
}
