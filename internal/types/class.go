package types

import (
	"fmt"
	"slices"
	"sync"
)

// ClassInfo names a class together with all of its ancestors.
// Ancestors are transitive, sorted, and never include the class itself.
type ClassInfo struct {
	Name      string
	Ancestors []string
}

// NewClassInfo builds a ClassInfo from a name and its ancestors in any order.
func NewClassInfo(name string, ancestors ...string) ClassInfo {
	anc := slices.Clone(ancestors)
	slices.Sort(anc)
	anc = slices.Compact(anc)
	anc = slices.DeleteFunc(anc, func(a string) bool { return a == name })
	return ClassInfo{Name: name, Ancestors: anc}
}

// IsSubclassOf reports whether the class is parent or descends from it.
func (c ClassInfo) IsSubclassOf(parent string) bool {
	if c.Name == parent {
		return true
	}
	_, found := slices.BinarySearch(c.Ancestors, parent)
	return found
}

// ClassRegistry is the class-lookup collaborator. It validates class names
// before object types are built.
//
// Thread-safety: all methods are safe for concurrent use.
type ClassRegistry struct {
	mu      sync.RWMutex
	parents map[string][]string
}

// NewClassRegistry returns an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{parents: make(map[string][]string)}
}

// Define registers a class and its direct parents. Parents need not be
// defined yet; they are resolved on lookup. Redefining a class with the same
// parents is a no-op.
func (r *ClassRegistry) Define(name string, parents ...string) error {
	if name == "" {
		return &ConstructionError{Code: ErrCodeInvalidName, Message: "class name is empty"}
	}
	p := slices.Clone(parents)
	slices.Sort(p)
	p = slices.Compact(p)
	if slices.Contains(p, name) {
		return &ConstructionError{
			Code:    ErrCodeClassCycle,
			Message: fmt.Sprintf("class %q lists itself as a parent", name),
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.parents[name]; ok {
		if slices.Equal(existing, p) {
			return nil
		}
		return &ConstructionError{
			Code:    ErrCodeDuplicateClass,
			Message: fmt.Sprintf("class %q already defined with parents %v", name, existing),
		}
	}
	r.parents[name] = p
	return nil
}

// Has reports whether the class is defined.
func (r *ClassRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.parents[name]
	return ok
}

// Names returns every defined class, sorted.
func (r *ClassRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.parents))
	for n := range r.parents {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Class resolves the transitive ancestry of a defined class.
func (r *ClassRegistry) Class(name string) (ClassInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.parents[name]; !ok {
		return ClassInfo{}, newUnknownClassError(name)
	}

	seen := map[string]bool{}
	var visit func(n string, path []string) error
	visit = func(n string, path []string) error {
		for _, p := range r.parents[n] {
			if p == name || slices.Contains(path, p) {
				return &ConstructionError{
					Code:    ErrCodeClassCycle,
					Message: fmt.Sprintf("class %q inherits from itself via %q", name, p),
				}
			}
			if _, ok := r.parents[p]; !ok {
				return newUnknownClassError(p)
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			if err := visit(p, append(path, p)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(name, nil); err != nil {
		return ClassInfo{}, err
	}

	ancestors := make([]string, 0, len(seen))
	for a := range seen {
		ancestors = append(ancestors, a)
	}
	return NewClassInfo(name, ancestors...), nil
}

// Object builds the object type of a defined class.
func (r *ClassRegistry) Object(name string) (*ObjectType, error) {
	info, err := r.Class(name)
	if err != nil {
		return nil, err
	}
	return NewObjectTypeFromClass(info, nil), nil
}
