package component

import "github.com/justin-david-todd/phoenix-clone/common"

// Health tracks hit points. Current always stays within [0, Max].
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) Health {
	if max < 0 {
		max = 0
	}
	return Health{Max: max, Current: max}
}

// Dead reports whether the health pool is empty.
func (h *Health) Dead() bool {
	return h == nil || h.Current <= 0
}

// TakeDamage removes amount. The result is clamped to [0, Max] so a negative
// amount cannot overheal.
func (h *Health) TakeDamage(amount int) {
	if h == nil {
		return
	}
	h.Current = common.ClampInt(h.Current-amount, 0, h.Max)
}

// Heal restores amount, clamped to [0, Max].
func (h *Health) Heal(amount int) {
	if h == nil {
		return
	}
	h.Current = common.ClampInt(h.Current+amount, 0, h.Max)
}

// Set assigns v when it does not exceed Max. Larger values are ignored.
func (h *Health) Set(v int) {
	if h == nil || v > h.Max {
		return
	}
	if v < 0 {
		v = 0
	}
	h.Current = v
}

// Ratio returns Current/Max in [0, 1].
func (h *Health) Ratio() float64 {
	if h == nil {
		return 0
	}
	return common.Ratio(h.Current, h.Max)
}
