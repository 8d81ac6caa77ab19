package native

import "sync"

// StubObject is the stub's record of one allocated object.
type StubObject struct {
	Class     string
	Attrs     map[string]string
	Children  []Ref
	Mapped    bool
	Visible   bool
	Destroyed bool
	// Params holds the constructor params, if any.
	Params map[string]any
}

// StubSystem is an in-memory System for tests. It tracks objects, attribute
// tables with the unset-vs-empty distinction, and destroy notifications,
// and counts notify installs per ref so tests can assert the hook is
// registered exactly once.
type StubSystem struct {
	mu       sync.Mutex
	nextRef  Ref
	objects  map[Ref]*StubObject
	notifies map[Ref]func(Ref)

	// NotifyInstalls counts RegisterDestroyNotify calls per ref.
	NotifyInstalls map[Ref]int

	// MapStatus and ShowStatus are returned from Map and Show.
	// Zero means failure, per the toolkit convention.
	MapStatus  int
	ShowStatus int

	// FailCreate forces Create to return the null Ref.
	FailCreate bool
}

// NewStubSystem returns a stub with Map and Show succeeding.
func NewStubSystem() *StubSystem {
	return &StubSystem{
		nextRef:        1,
		objects:        make(map[Ref]*StubObject),
		notifies:       make(map[Ref]func(Ref)),
		NotifyInstalls: make(map[Ref]int),
		MapStatus:      1,
		ShowStatus:     1,
	}
}

// Connect installs the stub as the current toolkit and registers teardown.
// The cleanup function should be testing.T.Cleanup or equivalent:
//
//	sys := native.NewStubSystem()
//	sys.Connect(t.Cleanup)
func (s *StubSystem) Connect(cleanup func(func())) {
	Connect(s)
	cleanup(func() { Connect(nil) })
}

// Add places an object of the given class in the stub without going through
// Create, returning its ref. Lets tests hand a known handle to the binding.
func (s *StubSystem) Add(class string) Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(class, nil)
}

func (s *StubSystem) add(class string, params map[string]any) Ref {
	ref := s.nextRef
	s.nextRef++
	s.objects[ref] = &StubObject{
		Class:  class,
		Attrs:  make(map[string]string),
		Params: params,
	}
	return ref
}

// Object returns the stub's record for ref, or nil.
func (s *StubSystem) Object(ref Ref) *StubObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[ref]
}

// Live reports whether ref names an object that has not been destroyed.
func (s *StubSystem) Live(ref Ref) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := s.objects[ref]
	return obj != nil && !obj.Destroyed
}

// FireDestroyNotify invokes the destroy notification for ref, if one is
// installed, without destroying the object. Lets tests simulate the toolkit
// firing teardown out of band.
func (s *StubSystem) FireDestroyNotify(ref Ref) {
	s.mu.Lock()
	fn := s.notifies[ref]
	s.mu.Unlock()
	if fn != nil {
		fn(ref)
	}
}

func (s *StubSystem) Create(class string, params map[string]any, children ...Ref) Ref {
	s.mu.Lock()
	if s.FailCreate {
		s.mu.Unlock()
		return 0
	}
	ref := s.add(class, params)
	s.objects[ref].Children = append(s.objects[ref].Children, children...)
	s.mu.Unlock()
	return ref
}

func (s *StubSystem) SetAttribute(ref Ref, name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj := s.objects[ref]; obj != nil {
		obj.Attrs[name] = value
	}
}

func (s *StubSystem) Attribute(ref Ref, name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := s.objects[ref]
	if obj == nil {
		return "", false
	}
	value, ok := obj.Attrs[name]
	return value, ok
}

func (s *StubSystem) ClearAttribute(ref Ref, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj := s.objects[ref]; obj != nil {
		delete(obj.Attrs, name)
	}
}

func (s *StubSystem) ResetAttribute(ref Ref, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetAttribute(ref, name)
}

func (s *StubSystem) resetAttribute(ref Ref, name string) {
	obj := s.objects[ref]
	if obj == nil {
		return
	}
	delete(obj.Attrs, name)
	for _, child := range obj.Children {
		s.resetAttribute(child, name)
	}
}

// Destroy marks the object destroyed, recursively destroys its children, and
// fires each destroy notification exactly once.
func (s *StubSystem) Destroy(ref Ref) {
	s.mu.Lock()
	notifies := s.destroy(ref, nil)
	s.mu.Unlock()
	for _, n := range notifies {
		n.fn(n.ref)
	}
}

type pendingNotify struct {
	ref Ref
	fn  func(Ref)
}

func (s *StubSystem) destroy(ref Ref, notifies []pendingNotify) []pendingNotify {
	obj := s.objects[ref]
	if obj == nil || obj.Destroyed {
		return notifies
	}
	obj.Destroyed = true
	for _, child := range obj.Children {
		notifies = s.destroy(child, notifies)
	}
	if fn := s.notifies[ref]; fn != nil {
		delete(s.notifies, ref)
		notifies = append(notifies, pendingNotify{ref: ref, fn: fn})
	}
	return notifies
}

func (s *StubSystem) Map(ref Ref) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MapStatus != 0 {
		if obj := s.objects[ref]; obj != nil {
			obj.Mapped = true
		}
	}
	return s.MapStatus
}

func (s *StubSystem) Unmap(ref Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj := s.objects[ref]; obj != nil {
		obj.Mapped = false
	}
}

func (s *StubSystem) Show(ref Ref) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShowStatus != 0 {
		if obj := s.objects[ref]; obj != nil {
			obj.Mapped = true
			obj.Visible = true
		}
	}
	return s.ShowStatus
}

func (s *StubSystem) Hide(ref Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj := s.objects[ref]; obj != nil {
		obj.Visible = false
	}
}

func (s *StubSystem) ClassName(ref Ref) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj := s.objects[ref]; obj != nil {
		return obj.Class
	}
	return ""
}

func (s *StubSystem) RegisterDestroyNotify(ref Ref, fn func(Ref)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifies[ref] = fn
	s.NotifyInstalls[ref]++
}
