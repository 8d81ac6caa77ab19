package element

import (
	"testing"

	aerrors "github.com/go-aspen/aspen/pkg/errors"
	"github.com/go-aspen/aspen/pkg/native"
)

func TestRegisterAndDispatchCallback(t *testing.T) {
	sys := setup(t)
	ref := sys.Add("button")
	b := FromRaw[button](ref)

	var order []int
	var got native.Ref
	RegisterCallback(b, "action", func(h Handle) {
		order = append(order, 1)
		got = h.Raw()
	})
	RegisterCallback(b, "action", func(Handle) { order = append(order, 2) })
	RegisterCallback(b, "enterwindow", func(Handle) { t.Error("wrong callback name dispatched") })

	DispatchCallback(ref, "action")

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("dispatch order = %v, want [1 2]", order)
	}
	if got != ref {
		t.Errorf("callback received ref %v, want %v", got, ref)
	}
}

func TestDispatchCallbackUnknownRefIsNoop(t *testing.T) {
	setup(t)
	DispatchCallback(native.Ref(0x9999), "action")
}

func TestRegisterNilCallbackIsNoop(t *testing.T) {
	sys := setup(t)
	b := FromRaw[button](sys.Add("button"))
	RegisterCallback(b, "action", nil)
	if got := CallbackCount(b.Raw()); got != 0 {
		t.Errorf("CallbackCount = %d after nil registration, want 0", got)
	}
}

func TestReleaseCallbacksIsIdempotent(t *testing.T) {
	sys := setup(t)
	ref := sys.Add("button")
	b := FromRaw[button](ref)
	RegisterCallback(b, "action", func(Handle) {})

	releaseCallbacks(ref)
	if got := CallbackCount(ref); got != 0 {
		t.Fatalf("CallbackCount = %d after release, want 0", got)
	}

	// Releasing a ref with no entry must not fail or corrupt state.
	releaseCallbacks(ref)
	releaseCallbacks(native.Ref(0x4242))
	if got := CallbackCount(ref); got != 0 {
		t.Errorf("CallbackCount = %d after duplicate release, want 0", got)
	}
}

func TestDestroyReleasesOnlyThatRef(t *testing.T) {
	sys := setup(t)
	b1 := FromRaw[button](sys.Add("button"))
	b2 := FromRaw[button](sys.Add("button"))
	RegisterCallback(b1, "action", func(Handle) {})
	RegisterCallback(b2, "action", func(Handle) {})

	sys.Destroy(b1.Raw())

	if got := CallbackCount(b1.Raw()); got != 0 {
		t.Errorf("destroyed ref still has %d callbacks", got)
	}
	if got := CallbackCount(b2.Raw()); got != 1 {
		t.Errorf("unrelated ref lost its callbacks, count = %d", got)
	}
}

func TestCascadingChildDestroyReleasesChildCallbacks(t *testing.T) {
	sys := setup(t)
	child := sys.Create("button", nil)
	parent := sys.Create("dialog", nil, child)

	b := FromRaw[button](child)
	d := FromRaw[dialog](parent)
	RegisterCallback(b, "action", func(Handle) {})
	RegisterCallback(d, "close", func(Handle) {})

	d.Destroy()

	if got := CallbackCount(child); got != 0 {
		t.Errorf("child callbacks survived the parent's destroy, count = %d", got)
	}
	if got := CallbackCount(parent); got != 0 {
		t.Errorf("parent callbacks survived destroy, count = %d", got)
	}
}

func TestDispatchRecoversPanickingCallback(t *testing.T) {
	sys := setup(t)
	ref := sys.Add("button")
	b := FromRaw[button](ref)

	h := &panicCapture{}
	aerrors.SetHandler(h)
	defer aerrors.SetHandler(nil)

	ran := false
	RegisterCallback(b, "action", func(Handle) { panic("callback boom") })
	RegisterCallback(b, "action", func(Handle) { ran = true })

	DispatchCallback(ref, "action")

	if !ran {
		t.Error("a panicking callback should not stop later ones")
	}
	if len(h.panics) != 1 {
		t.Errorf("reported panics = %d, want 1", len(h.panics))
	}
}

type panicCapture struct {
	panics []*aerrors.PanicError
}

func (c *panicCapture) HandleError(*aerrors.AspenError) {}
func (c *panicCapture) HandlePanic(err *aerrors.PanicError) {
	c.panics = append(c.panics, err)
}
