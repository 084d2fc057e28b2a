package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Equal_IntDoubleCoalesce(t *testing.T) {
	assert.True(t, Equal(NewInt(42), NewDouble(42.0)))
	assert.False(t, Equal(NewInt(42), NewDouble(42.5)))
	assert.True(t, Equal(Null, Null))
	assert.False(t, BoolEqual(Null, Null))
}

func Test_Equal_List(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewString("x")})
	b := NewList([]Value{NewInt(1), NewString("x")})
	c := NewList([]Value{NewInt(1), NewString("y")})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func Test_Compare_NullSortsAfter(t *testing.T) {
	c, err := Compare(NewInt(1), Null)
	assert.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(Null, NewInt(1))
	assert.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = Compare(Null, Null)
	assert.NoError(t, err)
	assert.Equal(t, 0, c)
}

func Test_Compare_Numeric(t *testing.T) {
	c, err := Compare(NewInt(1), NewDouble(1.5))
	assert.NoError(t, err)
	assert.Equal(t, -1, c)
}

func Test_Compare_Incomparable(t *testing.T) {
	_, err := Compare(NewInt(1), NewString("a"))
	assert.ErrorIs(t, err, ErrIncomparable)

	_, err = Compare(NewList(nil), NewList(nil))
	assert.ErrorIs(t, err, ErrIncomparable)
}

func Test_Compare_Bool(t *testing.T) {
	c, err := Compare(NewBool(false), NewBool(true))
	assert.NoError(t, err)
	assert.Equal(t, -1, c)
}

func Test_Arith_NullPropagates(t *testing.T) {
	v, err := Add(Null, NewInt(1))
	assert.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = Mul(NewInt(2), Null)
	assert.NoError(t, err)
	assert.True(t, v.IsNull())
}

func Test_Arith_IntStaysInt(t *testing.T) {
	v, err := Add(NewInt(2), NewInt(3))
	assert.NoError(t, err)
	assert.Equal(t, TypeInt, v.Typ)
	assert.Equal(t, int64(5), v.Int)
}

func Test_Arith_MixedPromotesToDouble(t *testing.T) {
	v, err := Add(NewInt(2), NewDouble(3.5))
	assert.NoError(t, err)
	assert.Equal(t, TypeDouble, v.Typ)
	assert.Equal(t, 5.5, v.Double)
}

func Test_Arith_StringConcat(t *testing.T) {
	v, err := Add(NewString("foo"), NewString("bar"))
	assert.NoError(t, err)
	assert.Equal(t, "foobar", v.Str)
}

func Test_Arith_DivByZero(t *testing.T) {
	_, err := Div(NewInt(1), NewInt(0))
	assert.Error(t, err)
}
