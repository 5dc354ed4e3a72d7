package typing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestTypesFirstCharacterImmediately(t *testing.T) {
	tw, err := New([]string{"Go"})
	require.NoError(t, err)
	assert.Equal(t, "G", tw.Text())
}

func TestFullCycle(t *testing.T) {
	tw, err := New([]string{"ab", "xyz"})
	require.NoError(t, err)

	steps := []struct {
		dt   time.Duration
		want string
	}{
		{79 * ms, "a"},
		{1 * ms, "ab"},
		{1799 * ms, "ab"},
		{1 * ms, "a"},
		{40 * ms, ""},
		{399 * ms, ""},
		{1 * ms, "x"},
		{160 * ms, "xyz"},
	}
	for i, s := range steps {
		tw.Update(s.dt)
		assert.Equal(t, s.want, tw.Text(), "step %d", i)
	}
	assert.Equal(t, 1, tw.Index())
	assert.True(t, tw.Deleting())
}

func TestWrapsToFirstText(t *testing.T) {
	tw, err := New([]string{"a", "b"})
	require.NoError(t, err)

	// "a": pause, erase, gap, then "b": pause, erase, gap.
	tw.Update(1800*ms + 40*ms + 400*ms)
	assert.Equal(t, "b", tw.Text())
	tw.Update(1800*ms + 40*ms + 400*ms)
	assert.Equal(t, "a", tw.Text())
	assert.Equal(t, 0, tw.Index())
}

func TestLargeUpdateCatchesUp(t *testing.T) {
	tw, err := New([]string{"hello"})
	require.NoError(t, err)
	tw.Update(4 * 80 * ms)
	assert.Equal(t, "hello", tw.Text())
}

func TestUnicode(t *testing.T) {
	tw, err := New([]string{"héllo ✓"})
	require.NoError(t, err)
	tw.Update(80 * ms)
	assert.Equal(t, "hé", tw.Text())
}

func TestOptions(t *testing.T) {
	tw, err := New([]string{"abc"}, WithSpeed(10*ms), WithPause(100*ms))
	require.NoError(t, err)
	tw.Update(20 * ms)
	assert.Equal(t, "abc", tw.Text())
	tw.Update(100 * ms)
	assert.Equal(t, "ab", tw.Text())
	tw.Update(5 * ms)
	assert.Equal(t, "a", tw.Text())
}

func TestNoTexts(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNoTexts))

	_, err = New([]string{"", ""})
	assert.ErrorIs(t, err, ErrNoTexts)
}

func TestSkipsEmptyTexts(t *testing.T) {
	tw, err := New([]string{"", "ok"})
	require.NoError(t, err)
	assert.Equal(t, "o", tw.Text())
}
