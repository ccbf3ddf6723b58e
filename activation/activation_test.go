package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, Apply(Sigmoid, 0), 1e-9)
	assert.Greater(t, Apply(Sigmoid, 10), 0.99)
	assert.Less(t, Apply(Sigmoid, -10), 0.01)
}

func TestApplyModifiedSigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, Apply(ModifiedSigmoid, 0), 1e-9)
	want := 1.0 / (1.0 + math.Exp(-4.9*0.3))
	assert.InDelta(t, want, Apply(ModifiedSigmoid, 0.3), 1e-9)
}

func TestApplyTanh(t *testing.T) {
	assert.InDelta(t, 0, Apply(Tanh, 0), 1e-9)
	assert.InDelta(t, math.Tanh(1.5), Apply(Tanh, 1.5), 1e-9)
}

func TestApplyReLU(t *testing.T) {
	assert.Equal(t, 0.0, Apply(ReLU, -3))
	assert.Equal(t, 3.0, Apply(ReLU, 3))
	assert.Equal(t, 0.0, Apply(ReLU, 0))
}

func TestApplySwish(t *testing.T) {
	x := 1.25
	want := x * (1.0 / (1.0 + math.Exp(-x)))
	assert.InDelta(t, want, Apply(Swish, x), 1e-9)
}

func TestApplyLinearAndNone(t *testing.T) {
	assert.Equal(t, 2.5, Apply(Linear, 2.5))
	assert.Equal(t, -4.0, Apply(None, -4.0))
}

func TestApplyUnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		Apply(Type(200), 0)
	})
}

func TestStringAndFromName(t *testing.T) {
	for _, tt := range []Type{None, Linear, Sigmoid, Tanh, ReLU, Swish, ModifiedSigmoid} {
		name := tt.String()
		parsed, err := FromName(name)
		assert.NoError(t, err)
		assert.Equal(t, tt, parsed)
	}

	_, err := FromName("bogus")
	assert.Error(t, err)
}
