package util

import (
	"fmt"

	"github.com/kbukum/utilkit/errors"
)

// Prototype is a named member table with an optional parent. Instances look
// members up on themselves, then on their prototype, then up the Super
// chain. Statics belong to the prototype and are copied, not delegated, by
// Inherits.
//
// Prototypes are not safe for concurrent mutation. Build them up front.
// Plain Go code should reach for struct embedding instead.
type Prototype struct {
	Name    string
	Super   *Prototype
	Members map[string]any
	Statics map[string]any
}

// NewPrototype returns an empty prototype.
func NewPrototype(name string) *Prototype {
	return &Prototype{
		Name:    name,
		Members: make(map[string]any),
		Statics: make(map[string]any),
	}
}

// Define sets a member shared by every instance.
func (p *Prototype) Define(name string, v any) *Prototype {
	if p.Members == nil {
		p.Members = make(map[string]any)
	}
	p.Members[name] = v
	return p
}

// Static sets a value on the prototype itself.
func (p *Prototype) Static(name string, v any) *Prototype {
	if p.Statics == nil {
		p.Statics = make(map[string]any)
	}
	p.Statics[name] = v
	return p
}

// Lookup resolves a member through the Super chain.
func (p *Prototype) Lookup(name string) (any, bool) {
	for cur := p; cur != nil; cur = cur.Super {
		if v, ok := cur.Members[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// StaticValue returns an own static.
func (p *Prototype) StaticValue(name string) (any, bool) {
	v, ok := p.Statics[name]
	return v, ok
}

// IsA reports whether other is p or one of its ancestors.
func (p *Prototype) IsA(other *Prototype) bool {
	for cur := p; cur != nil; cur = cur.Super {
		if cur == other {
			return true
		}
	}
	return false
}

// New returns an instance whose constructor is p.
func (p *Prototype) New() *Instance {
	return &Instance{proto: p, fields: make(map[string]any)}
}

// Instance holds own fields and delegates everything else to its prototype.
type Instance struct {
	proto  *Prototype
	fields map[string]any
}

// Get returns an own field, else a member found through the prototype chain.
func (i *Instance) Get(name string) (any, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	return i.proto.Lookup(name)
}

// Set stores an own field, shadowing any inherited member.
func (i *Instance) Set(name string, v any) {
	i.fields[name] = v
}

// Constructor returns the prototype the instance was created from.
func (i *Instance) Constructor() *Prototype {
	return i.proto
}

// Inherits makes sub delegate to parent: parent's statics present now are
// copied onto sub, overwriting, and sub.Super is set to parent.
func Inherits(sub, parent *Prototype) error {
	if sub == nil || parent == nil {
		return errors.InvalidArgument("prototype", "sub and parent must not be nil")
	}
	if parent.IsA(sub) {
		return errors.InvalidArgument("prototype",
			fmt.Sprintf("%q already inherits from %q", parent.Name, sub.Name))
	}

	sub.Super = parent
	for k, v := range parent.Statics {
		sub.Static(k, v)
	}
	return nil
}
