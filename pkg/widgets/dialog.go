package widgets

import (
	"github.com/go-aspen/aspen/pkg/element"
	"github.com/go-aspen/aspen/pkg/native"
)

// ClassDialog is the toolkit class for top-level dialog windows.
const ClassDialog = "dialog"

func init() { RegisterClass(ClassDialog) }

// Dialog is a top-level window holding a single child tree. Destroying a
// dialog destroys its attached children with it, per toolkit rules.
type Dialog struct {
	element.Base
}

// TargetClassName returns the native class this wrapper binds.
func (Dialog) TargetClassName() string {
	return ClassDialog
}

// FromRawUnchecked wraps a ref known to be a live dialog that has already
// crossed element.FromRaw.
func (Dialog) FromRawUnchecked(ref native.Ref) Dialog {
	return Dialog{element.Wrap(ref)}
}

// NewDialog allocates a dialog with the given child tree.
func NewDialog(child element.Element) Dialog {
	return create[Dialog](ClassDialog, nil, child)
}

// Title returns the dialog's title attribute, or "" when unset.
func (d Dialog) Title() string {
	title, _ := d.Attribute("title")
	return title
}

// SetTitle sets the dialog's title attribute.
func (d Dialog) SetTitle(title string) {
	d.SetAttribute("title", title)
}

// OnClose registers fn to run when the user asks the dialog to close.
func (d Dialog) OnClose(fn func()) {
	element.RegisterCallback(d, "close", func(element.Handle) { fn() })
}
