package widgets

import (
	"github.com/go-aspen/aspen/pkg/element"
	"github.com/go-aspen/aspen/pkg/native"
)

// ClassLabel is the toolkit class for static text labels.
const ClassLabel = "label"

func init() { RegisterClass(ClassLabel) }

// Label is a static text control.
type Label struct {
	element.Base
}

func (Label) TargetClassName() string {
	return ClassLabel
}

func (Label) FromRawUnchecked(ref native.Ref) Label {
	return Label{element.Wrap(ref)}
}

// NewLabel allocates a label with the given text.
func NewLabel(text string) Label {
	l := create[Label](ClassLabel, nil)
	l.SetAttribute("title", text)
	return l
}

// Text returns the label's text, or "" when unset.
func (l Label) Text() string {
	text, _ := l.Attribute("title")
	return text
}

// SetText replaces the label's text.
func (l Label) SetText(text string) {
	l.SetAttribute("title", text)
}
