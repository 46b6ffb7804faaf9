package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxi/internal/loxvalue"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", loxvalue.Number(10))
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, loxvalue.Number(10), v)
}

func TestEnvironment_GetMissingReturnsFalse(t *testing.T) {
	env := New()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_InnerShadowsOuter(t *testing.T) {
	outer := New()
	outer.Define("a", loxvalue.String("outer"))
	inner := NewEnclosed(outer)
	inner.Define("a", loxvalue.String("inner"))

	v, _ := inner.Get("a")
	assert.Equal(t, loxvalue.String("inner"), v)

	v, _ = outer.Get("a")
	assert.Equal(t, loxvalue.String("outer"), v)
}

func TestEnvironment_AssignUpdatesDefiningScope(t *testing.T) {
	outer := New()
	outer.Define("count", loxvalue.Number(0))
	inner := NewEnclosed(outer)

	ok := inner.Assign("count", loxvalue.Number(1))
	assert.True(t, ok)

	v, _ := outer.Get("count")
	assert.Equal(t, loxvalue.Number(1), v)
}

func TestEnvironment_AssignMissingReturnsFalse(t *testing.T) {
	env := New()
	assert.False(t, env.Assign("nope", loxvalue.Nil{}))
}

func TestEnvironment_GetAtAssignAtWalkExactDistance(t *testing.T) {
	global := New()
	global.Define("x", loxvalue.Number(1))
	mid := NewEnclosed(global)
	mid.Define("x", loxvalue.Number(2))
	inner := NewEnclosed(mid)

	assert.Equal(t, loxvalue.Number(2), inner.GetAt(1, "x"))
	assert.Equal(t, loxvalue.Number(1), inner.GetAt(2, "x"))

	inner.AssignAt(1, "x", loxvalue.Number(99))
	v, _ := mid.Get("x")
	assert.Equal(t, loxvalue.Number(99), v)
}

func TestEnvironment_SharedByReferenceForClosures(t *testing.T) {
	// Two references to the same environment must observe each other's
	// mutations — the mechanism closures rely on.
	env := New()
	env.Define("n", loxvalue.Number(10))
	alias := env

	alias.Assign("n", loxvalue.Number(11))
	v, _ := env.Get("n")
	assert.Equal(t, loxvalue.Number(11), v)
}
