package sprig

import (
	"fmt"
	"slices"
)

// Property is an observable attribute of a Node. Set stores the value and,
// when it differs from the previous one, calls every bound callback in
// registration order with the owning node and the new value.
//
// A callback that returns an error or panics is isolated: the failure is
// swallowed (and logged in debug mode), later callbacks still run, and the
// stored value is kept.
type Property[T comparable] struct {
	owner  *Node
	name   string
	value  T
	subs   []binding[T]
	nextID uint32

	// stored runs after a changed value is stored and before any callback.
	stored func()
}

type binding[T comparable] struct {
	id uint32
	fn func(*Node, T) error
}

// BindHandle removes a callback registered with Bind.
type BindHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unbinds the callback. Calling Remove more than once is a no-op.
func (h BindHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

func (p *Property[T]) init(owner *Node, name string, v T) {
	p.owner = owner
	p.name = name
	p.value = v
}

// Name returns the attribute name used in diagnostics.
func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Set stores v and notifies bound callbacks if the value changed.
// It reports whether the value changed.
func (p *Property[T]) Set(v T) bool {
	old := p.value
	p.value = v
	if old == v {
		return false
	}
	if p.stored != nil {
		p.stored()
	}
	if len(p.subs) == 0 {
		return true
	}
	// Callbacks may bind or unbind while we iterate.
	for _, b := range slices.Clone(p.subs) {
		p.call(b, v)
	}
	return true
}

// Bind appends fn to the callback list and returns a handle that removes it.
func (p *Property[T]) Bind(fn func(n *Node, v T) error) BindHandle {
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, binding[T]{id: id, fn: fn})
	return BindHandle{id: id, remove: p.unbind}
}

// Bindings returns the number of bound callbacks.
func (p *Property[T]) Bindings() int {
	return len(p.subs)
}

func (p *Property[T]) unbind(id uint32) {
	for i := range p.subs {
		if p.subs[i].id == id {
			copy(p.subs[i:], p.subs[i+1:])
			p.subs[len(p.subs)-1] = binding[T]{}
			p.subs = p.subs[:len(p.subs)-1]
			return
		}
	}
}

func (p *Property[T]) call(b binding[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			debugBindingFailure(p.owner, p.name, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := b.fn(p.owner, v); err != nil {
		debugBindingFailure(p.owner, p.name, err)
	}
}
