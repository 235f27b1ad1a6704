// Package scope implements the chained-scope symbol table discipline shared
// by the quaternion and low-level IR generators (spec.md §4.3, §4.4): one
// scope node per function body and per compound statement, entries that
// never move once inserted, and lookup that walks outward through parent
// scopes. The scope is generic over its stored payload so lang/quad can key
// a quaternion symbol entry by name and lang/llir can key an IR allocation
// handle by name, using the identical chaining and lookup code.
package scope

import "github.com/dolthub/swiss"

// Entry pairs a declared name with its payload. Once appended to a Scope's
// entry list it keeps its index there. The pointers Declare and LookupLocal
// return address that list's backing array, which a later Declare in the
// same scope may reallocate; lang/llir and lang/quad keep only the Payload.
type Entry[T any] struct {
	Name    string
	Payload T
}

// Scope is one link in a chain of lexical scopes. The zero value is not
// usable; construct with New or Push.
type Scope[T any] struct {
	parent  *Scope[T]
	entries []Entry[T]
	index   *swiss.Map[string, int] // name -> index into entries
}

// New creates a root scope with no parent.
func New[T any]() *Scope[T] {
	return &Scope[T]{index: swiss.NewMap[string, int](8)}
}

// Push creates a new child scope of s.
func (s *Scope[T]) Push() *Scope[T] {
	return &Scope[T]{parent: s, index: swiss.NewMap[string, int](8)}
}

// Parent returns s's enclosing scope, or nil if s is a root.
func (s *Scope[T]) Parent() *Scope[T] { return s.parent }

// Declare inserts a new entry for name in s. It fails if name is already
// declared in this exact scope (not an enclosing one): shadowing across
// scopes is allowed, redeclaration within one scope is not.
func (s *Scope[T]) Declare(name string, payload T) (*Entry[T], bool) {
	if _, ok := s.index.Get(name); ok {
		return nil, false
	}
	s.entries = append(s.entries, Entry[T]{Name: name, Payload: payload})
	s.index.Put(name, len(s.entries)-1)
	return &s.entries[len(s.entries)-1], true
}

// LookupLocal finds name in s only, without consulting parent scopes.
func (s *Scope[T]) LookupLocal(name string) (*Entry[T], bool) {
	i, ok := s.index.Get(name)
	if !ok {
		return nil, false
	}
	return &s.entries[i], true
}

// Lookup finds name in s or, failing that, walks outward through each
// parent scope in turn.
func (s *Scope[T]) Lookup(name string) (*Entry[T], bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.LookupLocal(name); ok {
			return e, true
		}
	}
	return nil, false
}

// Entries returns s's own entries in declaration order. The returned slice
// must not be mutated by the caller; its backing array is shared with s.
func (s *Scope[T]) Entries() []Entry[T] { return s.entries }

// Len returns the number of entries declared directly in s.
func (s *Scope[T]) Len() int { return len(s.entries) }
