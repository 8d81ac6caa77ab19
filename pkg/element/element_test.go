package element

import (
	"errors"
	"testing"

	"github.com/go-aspen/aspen/pkg/native"
)

// dialog and button are in-package stand-ins for the concrete wrapper types
// the widgets package defines; the core must work for any Wrapper.
type dialog struct{ Base }

func (dialog) TargetClassName() string                { return "dialog" }
func (dialog) FromRawUnchecked(ref native.Ref) dialog { return dialog{Wrap(ref)} }

type button struct{ Base }

func (button) TargetClassName() string                { return "button" }
func (button) FromRawUnchecked(ref native.Ref) button { return button{Wrap(ref)} }

func setup(t *testing.T) *native.StubSystem {
	sys := native.NewStubSystem()
	sys.Connect(t.Cleanup)
	t.Cleanup(ResetForTest)
	return sys
}

func TestFromRawNullRefPanics(t *testing.T) {
	setup(t)
	defer func() {
		if recover() == nil {
			t.Error("FromRaw with a null ref should panic")
		}
	}()
	FromRaw[dialog](0)
}

func TestFromRawInstallsDestroyNotifyOnce(t *testing.T) {
	sys := setup(t)
	ref := sys.Add("dialog")

	d := FromRaw[dialog](ref)
	if got := sys.NotifyInstalls[ref]; got != 1 {
		t.Fatalf("NotifyInstalls = %d after FromRaw, want 1", got)
	}

	// Aliasing an already-safe ref must not reinstall the hook.
	var zero dialog
	a := zero.FromRawUnchecked(ref)
	b := zero.FromRawUnchecked(ref)
	if a.Raw() != ref || b.Raw() != ref || d.Raw() != ref {
		t.Error("all aliases should share the raw ref")
	}
	if got := sys.NotifyInstalls[ref]; got != 1 {
		t.Errorf("NotifyInstalls = %d after unchecked aliases, want 1", got)
	}
}

func TestWrapperCopyIsAlias(t *testing.T) {
	sys := setup(t)
	d := FromRaw[dialog](sys.Add("dialog"))

	dup := d
	dup.SetAttribute("title", "shared")

	if title, ok := d.Attribute("title"); !ok || title != "shared" {
		t.Errorf("attribute set through a copy should be visible to the original, got (%q, %v)", title, ok)
	}
}

func TestAttributeUnsetVsEmpty(t *testing.T) {
	sys := setup(t)
	d := FromRaw[dialog](sys.Add("dialog"))

	if _, ok := d.Attribute("title"); ok {
		t.Error("unset attribute should report no value")
	}

	d.SetAttribute("title", "")
	if value, ok := d.Attribute("title"); !ok || value != "" {
		t.Errorf("empty-string attribute should report set, got (%q, %v)", value, ok)
	}

	d.ClearAttribute("title")
	if _, ok := d.Attribute("title"); ok {
		t.Error("cleared attribute should report no value")
	}
}

func TestMapAndShowSurfaceStatusFailure(t *testing.T) {
	sys := setup(t)
	d := FromRaw[dialog](sys.Add("dialog"))

	if err := d.Map(); err != nil {
		t.Fatalf("Map with success status: %v", err)
	}
	if err := d.Show(); err != nil {
		t.Fatalf("Show with success status: %v", err)
	}

	sys.MapStatus = 0
	if err := d.Map(); !errors.Is(err, ErrMapFailed) {
		t.Errorf("Map failure = %v, want ErrMapFailed", err)
	}
	sys.ShowStatus = 0
	if err := d.Show(); !errors.Is(err, ErrShowFailed) {
		t.Errorf("Show failure = %v, want ErrShowFailed", err)
	}
}

func TestClassNameQueriesLiveTag(t *testing.T) {
	sys := setup(t)
	// Deliberately mismatched: the live class wins over the static target.
	d := FromRaw[dialog](sys.Add("button"))
	if got := d.ClassName(); got != "button" {
		t.Errorf("ClassName() = %q, want the live class %q", got, "button")
	}
}

func TestDestroyForwardsToToolkit(t *testing.T) {
	sys := setup(t)
	ref := sys.Add("dialog")
	d := FromRaw[dialog](ref)

	d.Destroy()
	if sys.Live(ref) {
		t.Error("Destroy should tear down the native object")
	}
}
