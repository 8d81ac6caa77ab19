package widgets

import (
	"github.com/go-aspen/aspen/pkg/element"
	"github.com/go-aspen/aspen/pkg/native"
)

// Toolkit classes for the layout containers.
const (
	ClassVBox = "vbox"
	ClassHBox = "hbox"
)

func init() {
	RegisterClass(ClassVBox)
	RegisterClass(ClassHBox)
}

// VBox stacks its children vertically. Layout itself is the toolkit's job;
// the wrapper only hands the children over at construction.
type VBox struct {
	element.Base
}

func (VBox) TargetClassName() string {
	return ClassVBox
}

func (VBox) FromRawUnchecked(ref native.Ref) VBox {
	return VBox{element.Wrap(ref)}
}

// NewVBox allocates a vertical box attaching the given children in order.
func NewVBox(children ...element.Element) VBox {
	return create[VBox](ClassVBox, nil, children...)
}

// HBox lays its children out horizontally.
type HBox struct {
	element.Base
}

func (HBox) TargetClassName() string {
	return ClassHBox
}

func (HBox) FromRawUnchecked(ref native.Ref) HBox {
	return HBox{element.Wrap(ref)}
}

// NewHBox allocates a horizontal box attaching the given children in order.
func NewHBox(children ...element.Element) HBox {
	return create[HBox](ClassHBox, nil, children...)
}
