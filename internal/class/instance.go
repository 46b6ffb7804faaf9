package class

import (
	"fmt"

	"github.com/akashmaji946/loxi/internal/loxvalue"
)

// LoxInstance is an instance of a LoxClass: a mutable field map plus a
// reference to its class. Deliberately holds no method references of its
// own — methods are looked up on the class and bound on demand by Get, so
// an instance -> closure -> instance reference cycle never forms.
type LoxInstance struct {
	Class  *LoxClass
	Fields map[string]loxvalue.Value
}

func NewInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{Class: class, Fields: make(map[string]loxvalue.Value)}
}

func (i *LoxInstance) Type() string   { return "instance" }
func (i *LoxInstance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get reads a property: fields take precedence over methods, and a method
// hit is bound to this instance before being returned.
func (i *LoxInstance) Get(name string) (loxvalue.Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), true
	}
	return nil, false
}

// Set writes a field, creating it if absent.
func (i *LoxInstance) Set(name string, value loxvalue.Value) {
	i.Fields[name] = value
}

var _ loxvalue.Value = (*LoxInstance)(nil)
