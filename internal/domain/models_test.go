package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestBudgetBandRangeLabel(t *testing.T) {
	tests := []struct {
		name string
		band BudgetBand
		want string
	}{
		{"open both", BudgetBand{}, "金額目安なし"},
		{"max only", BudgetBand{MaxJPY: intp(3000)}, "〜¥3,000"},
		{"min only", BudgetBand{MinJPY: intp(40000)}, "¥40,000〜"},
		{"both", BudgetBand{MinJPY: intp(3000), MaxJPY: intp(8000)}, "¥3,000〜¥8,000"},
		{"small amount", BudgetBand{MaxJPY: intp(500)}, "〜¥500"},
		{"large amount", BudgetBand{MinJPY: intp(1200000)}, "¥1,200,000〜"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.band.RangeLabel())
		})
	}
}
