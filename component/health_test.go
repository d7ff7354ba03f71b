package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthStaysInRange(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		max    int
		apply  func(h *Health)
		expect int
	}{
		{"damage_floors_at_zero", 5, 10, func(h *Health) { h.TakeDamage(50) }, 0},
		{"damage_partial", 10, 10, func(h *Health) { h.TakeDamage(3) }, 7},
		{"heal_caps_at_max", 8, 10, func(h *Health) { h.Heal(100) }, 10},
		{"heal_partial", 2, 10, func(h *Health) { h.Heal(3) }, 5},
		{"set_within_max", 10, 10, func(h *Health) { h.Set(4) }, 4},
		{"set_equal_max", 1, 10, func(h *Health) { h.Set(10) }, 10},
		{"set_above_max_ignored", 6, 10, func(h *Health) { h.Set(11) }, 6},
		{"set_negative_floors", 6, 10, func(h *Health) { h.Set(-3) }, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := Health{Max: c.max, Current: c.start}
			c.apply(&h)
			assert.Equal(t, c.expect, h.Current)
			assert.GreaterOrEqual(t, h.Current, 0)
			assert.LessOrEqual(t, h.Current, h.Max)
		})
	}
}

func TestHealthSweep(t *testing.T) {
	for start := 0; start <= 10; start++ {
		for amount := -2; amount <= 25; amount += 3 {
			h := Health{Max: 10, Current: start}
			h.TakeDamage(amount)
			assert.True(t, h.Current >= 0 && h.Current <= h.Max, "damage start=%d amount=%d got %d", start, amount, h.Current)

			h = Health{Max: 10, Current: start}
			h.Heal(amount)
			assert.True(t, h.Current >= 0 && h.Current <= h.Max, "heal start=%d amount=%d got %d", start, amount, h.Current)
		}
	}
}

func TestHealthNegativeAmounts(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		apply  func(h *Health)
		expect int
	}{
		{"damage_at_full", 10, func(h *Health) { h.TakeDamage(-5) }, 10},
		{"damage_below_full", 4, func(h *Health) { h.TakeDamage(-5) }, 9},
		{"heal_at_zero", 0, func(h *Health) { h.Heal(-5) }, 0},
		{"heal_above_zero", 8, func(h *Health) { h.Heal(-5) }, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := Health{Max: 10, Current: c.start}
			c.apply(&h)
			assert.Equal(t, c.expect, h.Current)
		})
	}
}

func TestHealthRatio(t *testing.T) {
	h := NewHealth(40)
	assert.Equal(t, 1.0, h.Ratio())
	h.TakeDamage(10)
	assert.InDelta(t, 0.75, h.Ratio(), 1e-9)
	assert.False(t, h.Dead())
	h.TakeDamage(30)
	assert.True(t, h.Dead())

	var empty Health
	assert.Equal(t, 0.0, empty.Ratio())
}

func TestCooldown(t *testing.T) {
	var c Cooldown
	assert.True(t, c.Ready())

	c.Start(3)
	prev := c.Frames
	for i := 0; i < 6; i++ {
		c.Tick()
		assert.LessOrEqual(t, c.Frames, prev)
		assert.GreaterOrEqual(t, c.Frames, 0)
		prev = c.Frames
	}
	assert.True(t, c.Ready())

	c.Frames = -4
	c.Tick()
	assert.Equal(t, 0, c.Frames)
}

func TestSideHostile(t *testing.T) {
	assert.True(t, SidePlayer.Hostile(SideEnemy))
	assert.True(t, SideEnemy.Hostile(SidePlayer))
	assert.False(t, SidePlayer.Hostile(SidePlayer))
	assert.False(t, SideNeutral.Hostile(SideEnemy))
	assert.Equal(t, "enemy", SideEnemy.String())
}
