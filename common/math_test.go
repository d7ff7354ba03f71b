package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	cases := []struct {
		name           string
		v, lo, hi, out int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 15, 0, 10, 10},
		{"at_edges", 10, 0, 10, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.out, ClampInt(c.v, c.lo, c.hi))
		})
	}
}
