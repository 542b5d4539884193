package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		completed int
		total     int
		percent   int
	}{
		{"empty document", "", 0, 0, 0},
		{"no items", "# Plan\n\nJust prose.\n", 0, 0, 0},
		{"none done", "- [ ] a\n- [ ] b\n", 0, 2, 0},
		{"one of three floors", "- [x] a\n- [ ] b\n- [ ] c\n", 1, 3, 33},
		{"mixed markers and nesting", "- [x] a\n  - [X] b\n* [ ] c\n[ ] d\n", 2, 4, 50},
		{"all done", "- [x] a\n- [x] b\n", 2, 2, 100},
		{"record block ignored", "- [x] a\n- [ ] b\n\n---\n_Progress: 50% complete_\n", 1, 2, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Calculate(tt.doc)
			assert.Equal(t, tt.completed, s.Completed)
			assert.Equal(t, tt.total, s.Total)
			assert.Equal(t, tt.percent, s.Percent)
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	doc := "- [x] a\n- [ ] b\n- [x] c\n"
	assert.Equal(t, Calculate(doc), Calculate(doc))
}
