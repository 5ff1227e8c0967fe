package templates

import (
	"go/format"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeParams(t *testing.T) {
	assert.Equal(t, "", typeParams(0))
	assert.Equal(t, "T0", typeParams(1))
	assert.Equal(t, "T0, T1, T2", typeParams(3))
}

func TestCombineGenFormats(t *testing.T) {
	src := CombineGen(3)
	assert.Contains(t, src, "func Combine1[T0, O any](")
	assert.Contains(t, src, "func Combine3[T0, T1, T2, O any](")
	assert.Contains(t, src, "// Combine1 derives a cell from 1 input cell.")
	assert.Contains(t, src, "// Combine2 derives a cell from 2 input cells.")
	assert.NotContains(t, src, "Combine4")

	_, err := format.Source([]byte(src))
	require.NoError(t, err)
}

// The checked-in reactive/combine.go must match what the generator emits.
func TestCombineGenMatchesCheckedIn(t *testing.T) {
	want, err := os.ReadFile("../../../reactive/combine.go")
	require.NoError(t, err)

	got, err := format.Source([]byte(CombineGen(4)))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}
