// Package environment implements Lox's lexical scope chain: a name->value
// map plus an enclosing pointer.
//
// Environments are exclusively shared by pointer, never copied or cloned,
// since a closure must keep observing mutations made through any other
// reference to the same scope (a counter closure's captured variable has
// to increment across calls, not reset).
//
// GetAt/AssignAt walk a *known* number of parent links rather than
// searching outward by name. This is what lets the resolver's hop counts
// turn a dynamic name lookup into an O(depth) walk with no map probing
// beyond the final scope.
package environment

import (
	"fmt"

	"github.com/akashmaji946/loxi/internal/loxvalue"
)

// Environment is one lexical scope: a mutable name->value map with an
// optional parent. Always used as *Environment so that closures which
// capture one instance observe mutations made through any other reference
// to it.
type Environment struct {
	values    map[string]loxvalue.Value
	enclosing *Environment
}

// New creates a global (parentless) environment.
func New() *Environment {
	return &Environment{values: make(map[string]loxvalue.Value)}
}

// NewEnclosed creates a scope nested directly inside enclosing — used on
// block entry, function call, and the synthetic scopes that hold `this`
// and `super`.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]loxvalue.Value), enclosing: enclosing}
}

// Define binds name to value in this scope, shadowing any binding of the
// same name in an enclosing scope. Re-declaring an existing local name is
// permitted at the environment level; the resolver is what rejects
// illegal redeclarations statically.
func (e *Environment) Define(name string, value loxvalue.Value) {
	e.values[name] = value
}

// Get looks up name by walking outward through the scope chain, used only
// for names the resolver could not statically bind (globals).
func (e *Environment) Get(name string) (loxvalue.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign updates name in the nearest scope (outward from this one) that
// already defines it, used only for globals.
func (e *Environment) Assign(name string, value loxvalue.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// GetAt reads name after walking exactly distance parent links — the
// hop count the resolver recorded for this reference.
func (e *Environment) GetAt(distance int, name string) loxvalue.Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name after walking exactly distance parent links.
func (e *Environment) AssignAt(distance int, name string, value loxvalue.Value) {
	e.ancestor(distance).values[name] = value
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.enclosing == nil {
			panic(fmt.Sprintf("environment: ancestor(%d) walked past the global scope", distance))
		}
		env = env.enclosing
	}
	return env
}
