package widgets

import (
	"github.com/go-aspen/aspen/pkg/element"
	"github.com/go-aspen/aspen/pkg/native"
)

// ClassButton is the toolkit class for push buttons.
const ClassButton = "button"

func init() { RegisterClass(ClassButton) }

// Button is a push button with a text title.
type Button struct {
	element.Base
}

func (Button) TargetClassName() string {
	return ClassButton
}

func (Button) FromRawUnchecked(ref native.Ref) Button {
	return Button{element.Wrap(ref)}
}

// NewButton allocates a button with the given title.
func NewButton(title string) Button {
	b := create[Button](ClassButton, nil)
	b.SetAttribute("title", title)
	return b
}

// Title returns the button's title attribute, or "" when unset.
func (b Button) Title() string {
	title, _ := b.Attribute("title")
	return title
}

// OnAction registers fn to run when the button is activated.
func (b Button) OnAction(fn func()) {
	element.RegisterCallback(b, "action", func(element.Handle) { fn() })
}
