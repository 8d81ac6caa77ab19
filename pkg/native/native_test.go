package native

import "testing"

func TestCurrentPanicsWhenDisconnected(t *testing.T) {
	Connect(nil)
	defer func() {
		if recover() == nil {
			t.Error("Current() without a connected toolkit should panic")
		}
	}()
	Current()
}

func TestConnectInstallsSystem(t *testing.T) {
	sys := NewStubSystem()
	sys.Connect(t.Cleanup)

	if !Connected() {
		t.Fatal("expected Connected() after Connect")
	}
	if Current() != sys {
		t.Error("Current() should return the connected stub")
	}
}

func TestStubAttributeUnsetVsEmpty(t *testing.T) {
	sys := NewStubSystem()
	ref := sys.Add("label")

	if _, ok := sys.Attribute(ref, "title"); ok {
		t.Error("fresh attribute should be unset")
	}

	sys.SetAttribute(ref, "title", "")
	if value, ok := sys.Attribute(ref, "title"); !ok || value != "" {
		t.Errorf("got (%q, %v), want empty string set", value, ok)
	}

	sys.ClearAttribute(ref, "title")
	if _, ok := sys.Attribute(ref, "title"); ok {
		t.Error("cleared attribute should be unset again")
	}
}

func TestStubResetAttributeRecurses(t *testing.T) {
	sys := NewStubSystem()
	child := sys.Create("label", nil)
	parent := sys.Create("vbox", nil, child)

	sys.SetAttribute(parent, "font", "sans")
	sys.SetAttribute(child, "font", "sans")
	sys.ResetAttribute(parent, "font")

	if _, ok := sys.Attribute(parent, "font"); ok {
		t.Error("reset attribute should be unset on the parent")
	}
	if _, ok := sys.Attribute(child, "font"); ok {
		t.Error("reset attribute should be unset on the child")
	}
}

func TestStubDestroyRecursesAndNotifiesOnce(t *testing.T) {
	sys := NewStubSystem()
	child := sys.Create("button", nil)
	parent := sys.Create("dialog", nil, child)

	fired := map[Ref]int{}
	sys.RegisterDestroyNotify(parent, func(r Ref) { fired[r]++ })
	sys.RegisterDestroyNotify(child, func(r Ref) { fired[r]++ })

	sys.Destroy(parent)

	if sys.Live(parent) || sys.Live(child) {
		t.Error("destroy should tear down the parent and its children")
	}
	if fired[parent] != 1 || fired[child] != 1 {
		t.Errorf("notify counts = %v, want exactly one per ref", fired)
	}

	// A second destroy must not re-fire notifications.
	sys.Destroy(parent)
	if fired[parent] != 1 || fired[child] != 1 {
		t.Errorf("second destroy re-fired notifications: %v", fired)
	}
}

func TestStubNotifyInstallCounting(t *testing.T) {
	sys := NewStubSystem()
	ref := sys.Add("dialog")

	sys.RegisterDestroyNotify(ref, func(Ref) {})
	sys.RegisterDestroyNotify(ref, func(Ref) {})

	if got := sys.NotifyInstalls[ref]; got != 2 {
		t.Errorf("NotifyInstalls = %d, want 2", got)
	}
}

func TestStubFailCreate(t *testing.T) {
	sys := NewStubSystem()
	sys.FailCreate = true
	if ref := sys.Create("dialog", nil); !ref.IsNull() {
		t.Errorf("Create with FailCreate should return the null ref, got %v", ref)
	}
}

func TestStubStatusCodes(t *testing.T) {
	sys := NewStubSystem()
	ref := sys.Add("dialog")

	if sys.Map(ref) == 0 {
		t.Error("default MapStatus should be success")
	}
	sys.MapStatus = 0
	if sys.Map(ref) != 0 {
		t.Error("MapStatus=0 should be returned as failure")
	}

	if sys.Show(ref) == 0 {
		t.Error("default ShowStatus should be success")
	}
	obj := sys.Object(ref)
	if !obj.Visible {
		t.Error("successful Show should mark the object visible")
	}
	sys.Hide(ref)
	if obj.Visible {
		t.Error("Hide should clear visibility")
	}
}
