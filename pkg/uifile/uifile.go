// Package uifile loads declarative widget-tree documents and builds them
// into live elements through the connected toolkit.
//
// A document is YAML of nested nodes:
//
//	root:
//	  class: dialog
//	  attributes:
//	    title: Settings
//	  children:
//	    - class: vbox
//	      children:
//	        - class: label
//	          attributes: {title: "Theme"}
//	        - class: button
//	          attributes: {title: "Apply"}
package uifile

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-aspen/aspen/pkg/element"
	aerrors "github.com/go-aspen/aspen/pkg/errors"
	"github.com/go-aspen/aspen/pkg/native"
	"github.com/go-aspen/aspen/pkg/widgets"
)

// Sentinel errors for document handling.
var (
	// ErrUnknownClass is returned when a node names a class the binding
	// does not wrap.
	ErrUnknownClass = errors.New("uifile: unknown widget class")

	// ErrNoRoot is returned when a document has no root class.
	ErrNoRoot = errors.New("uifile: document has no root class")

	// ErrCreateFailed is returned when the toolkit constructor returns the
	// null ref for a node.
	ErrCreateFailed = errors.New("uifile: native create failed")
)

// Node is one widget in a document tree.
type Node struct {
	Class      string            `yaml:"class"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Children   []Node            `yaml:"children,omitempty"`
}

// Document is a parsed UI document.
type Document struct {
	Root Node `yaml:"root"`

	// path is the source file, when known; used in error reports.
	path string
}

// Parse reads a document from YAML bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &aerrors.ParseError{Err: err}
	}
	if doc.Root.Class == "" {
		return nil, &aerrors.ParseError{Err: ErrNoRoot}
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		var pe *aerrors.ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	doc.path = path
	return doc, nil
}

// Validate checks that every node names a class this binding wraps.
// It needs no connected toolkit.
func (d *Document) Validate() error {
	return d.validateNode(&d.Root)
}

func (d *Document) validateNode(n *Node) error {
	if !widgets.KnownClass(n.Class) {
		return &aerrors.ParseError{File: d.path, Class: n.Class, Err: ErrUnknownClass}
	}
	for i := range n.Children {
		if err := d.validateNode(&n.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the document's widget tree through the connected toolkit
// and returns the root erased as a generic handle. Children are built first
// and handed to the parent's constructor, matching toolkit attachment rules;
// the toolkit owns the resulting parent/child graph.
func (d *Document) Build() (element.Handle, error) {
	if err := d.Validate(); err != nil {
		return element.Handle{}, err
	}
	return d.buildNode(&d.Root)
}

func (d *Document) buildNode(n *Node) (element.Handle, error) {
	refs := make([]native.Ref, 0, len(n.Children))
	for i := range n.Children {
		child, err := d.buildNode(&n.Children[i])
		if err != nil {
			return element.Handle{}, err
		}
		refs = append(refs, child.Raw())
	}

	ref := native.Current().Create(n.Class, nil, refs...)
	if ref.IsNull() {
		err := &aerrors.AspenError{
			Op:    "uifile.Build",
			Kind:  aerrors.KindNative,
			Class: n.Class,
			Err:   ErrCreateFailed,
		}
		aerrors.Report(err)
		return element.Handle{}, err
	}

	h := element.FromRaw[element.Handle](ref)
	for name, value := range n.Attributes {
		h.SetAttribute(name, value)
	}
	return h, nil
}
