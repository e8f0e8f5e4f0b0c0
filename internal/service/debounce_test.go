package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebounceLatestWins(t *testing.T) {
	var d Debounce

	gen1 := d.Arm("h")
	gen2 := d.Arm("he")
	gen3 := d.Arm("heat")

	// Earlier timers fire after being superseded; they must not dispatch
	_, ok := d.Fire(gen1)
	assert.False(t, ok)
	_, ok = d.Fire(gen2)
	assert.False(t, ok)

	query, ok := d.Fire(gen3)
	assert.True(t, ok)
	assert.Equal(t, "heat", query)
}

func TestDebounceEmptyQueryNeverFires(t *testing.T) {
	var d Debounce

	gen := d.Arm("   ")
	_, ok := d.Fire(gen)
	assert.False(t, ok)
}

func TestDebounceCancel(t *testing.T) {
	var d Debounce

	gen := d.Arm("heat")
	d.Cancel()

	_, ok := d.Fire(gen)
	assert.False(t, ok)

	// Arming again after cancel works normally
	gen = d.Arm("alien")
	query, ok := d.Fire(gen)
	assert.True(t, ok)
	assert.Equal(t, "alien", query)
}
