package widgets

import (
	"github.com/go-aspen/aspen/pkg/element"
	"github.com/go-aspen/aspen/pkg/native"
)

// ClassText is the toolkit class for editable text fields.
const ClassText = "text"

func init() { RegisterClass(ClassText) }

// Text is an editable text field.
type Text struct {
	element.Base
}

func (Text) TargetClassName() string {
	return ClassText
}

func (Text) FromRawUnchecked(ref native.Ref) Text {
	return Text{element.Wrap(ref)}
}

// NewText allocates an empty text field.
func NewText() Text {
	return create[Text](ClassText, nil)
}

// Value returns the field's current contents, or "" when unset.
func (t Text) Value() string {
	value, _ := t.Attribute("value")
	return value
}

// SetValue replaces the field's contents.
func (t Text) SetValue(value string) {
	t.SetAttribute("value", value)
}

// OnValueChanged registers fn to run after the user edits the field.
func (t Text) OnValueChanged(fn func()) {
	element.RegisterCallback(t, "valuechanged", func(element.Handle) { fn() })
}
