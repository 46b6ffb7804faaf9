package class

import (
	"fmt"

	"github.com/akashmaji946/loxi/internal/callable"
	"github.com/akashmaji946/loxi/internal/loxvalue"
)

// LoxClass is a class value: a name, its methods, and an optional
// superclass for single inheritance.
type LoxClass struct {
	Name       string
	Superclass *LoxClass // nil if no `< Superclass` clause
	Methods    map[string]*LoxFunction
}

func (c *LoxClass) Type() string   { return "class" }
func (c *LoxClass) String() string { return c.Name }

// FindMethod looks up name on this class, then each superclass in order.
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the `init` method's arity, or zero if the class declares none.
func (c *LoxClass) Arity() int {
	if initializer, ok := c.FindMethod("init"); ok {
		return initializer.Arity()
	}
	return 0
}

// Call instantiates the class: construct a fresh instance, then — if an
// `init` method exists anywhere in the superclass chain — bind and invoke
// it with the call's arguments. The call's result is always the instance,
// never whatever `init` returns (callers rely on LoxFunction.Call already
// forcing an initializer's result back to `this`).
func (c *LoxClass) Call(interp callable.Interpreter, args []loxvalue.Value) loxvalue.Value {
	instance := NewInstance(c)
	if initializer, ok := c.FindMethod("init"); ok {
		initializer.Bind(instance).Call(interp, args)
	}
	return instance
}

var _ callable.Callable = (*LoxClass)(nil)
var _ fmt.Stringer = (*LoxClass)(nil)
