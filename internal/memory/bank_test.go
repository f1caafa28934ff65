package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewBankStartsAtZero(t *testing.T) {
	b := NewBank()
	for _, name := range Scalars {
		v, ok := b.Scalar(name)
		assert.True(t, ok, name)
		assert.Zero(t, v, name)
	}
	assert.Equal(t, "0", b.LastAnswer())
	assert.Len(t, b.Bindings(), len(Scalars))
}

func TestSetScalar(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.SetScalar("X", 2.5))
	v, _ := b.Scalar("X")
	assert.Equal(t, 2.5, v)

	assert.Error(t, b.SetScalar("Q", 1))
	assert.Error(t, b.SetScalar("Ans", 1))
}

func TestSaveMatrix(t *testing.T) {
	b := NewBank()
	name, err := b.SaveMatrix("A", [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "MatA", name)

	m, ok := b.Matrix("MatA")
	require.True(t, ok)
	assert.InDelta(t, -2.0, mat.Det(m), 1e-12)
	assert.Contains(t, b.Bindings(), "MatA")

	_, err = b.SaveMatrix("A", [][]float64{{1, 2}, {3}})
	assert.Error(t, err)
	_, err = b.SaveMatrix("Z", [][]float64{{1}})
	assert.Error(t, err)
	_, err = b.SaveMatrix("B", nil)
	assert.Error(t, err)
}

func TestSaveVectorCopiesInput(t *testing.T) {
	b := NewBank()
	xs := []float64{1, 2, 3}
	name, err := b.SaveVector("B", xs)
	require.NoError(t, err)
	assert.Equal(t, "VctB", name)

	xs[0] = 99
	v, ok := b.Vector("VctB")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.AtVec(0))
}

func TestAnswerValue(t *testing.T) {
	b := NewBank()
	b.SetLastAnswer("0.25")
	assert.Equal(t, 0.25, b.AnswerValue())

	b.SetLastAnswer("1/3")
	assert.Zero(t, b.AnswerValue())

	b.SetLastAnswer("[[1, 2]]")
	assert.Zero(t, b.AnswerValue())
}
