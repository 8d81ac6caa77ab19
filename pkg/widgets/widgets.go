// Package widgets provides the typed wrappers for the toolkit's control
// classes. Each wrapper is a thin copyable value over one native ref; the
// element package supplies the shared behavior, the safe construction entry
// point, and the downcast machinery.
package widgets

import (
	"sort"
	"sync"

	"github.com/go-aspen/aspen/pkg/element"
	"github.com/go-aspen/aspen/pkg/native"
)

var (
	classesMu sync.RWMutex
	classes   = make(map[string]struct{})
)

// RegisterClass records a native class name as known to the binding.
// Each widget file registers its class from init().
func RegisterClass(name string) {
	classesMu.Lock()
	classes[name] = struct{}{}
	classesMu.Unlock()
}

// KnownClass reports whether name is a class this binding wraps.
func KnownClass(name string) bool {
	classesMu.RLock()
	_, ok := classes[name]
	classesMu.RUnlock()
	return ok
}

// Classes returns the known class names, sorted.
func Classes() []string {
	classesMu.RLock()
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	classesMu.RUnlock()
	sort.Strings(names)
	return names
}

// create allocates a native object and runs it through the safe entry
// point, which installs the destroy notification. A null ref from the
// toolkit constructor is fatal there.
func create[E element.Wrapper[E]](class string, params map[string]any, children ...element.Element) E {
	refs := make([]native.Ref, len(children))
	for i, child := range children {
		refs[i] = child.Raw()
	}
	return element.FromRaw[E](native.Current().Create(class, params, refs...))
}
