// Package aspen documents the Aspen binding for the handle-based native
// widget toolkit.
//
// The binding lives in the subpackages:
//
//   - native:  the toolkit boundary — the opaque Ref and the System
//     interface a platform driver connects at startup
//   - element: the typed-handle core — the Element capability, the generic
//     Handle, runtime-checked downcasts, and the per-ref callback registry
//   - widgets: the typed wrappers (Dialog, Button, Label, Text, Image,
//     VBox, HBox) and their constructors
//   - uifile:  declarative YAML UI documents built into live elements
//
// All of it is bound to the toolkit's single thread: construct, query, and
// destroy elements only from the thread the toolkit runs on.
package aspen
