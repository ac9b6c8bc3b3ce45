package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want requestLine
		ok   bool
	}{
		{
			name: "bare name",
			line: "Velium Tower Shield",
			want: requestLine{Name: "Velium Tower Shield", Quality: domain.QualityRaw, Quantity: 1},
			ok:   true,
		},
		{
			name: "trailing quantity",
			line: "Velium Tower Shield 2",
			want: requestLine{Name: "Velium Tower Shield", Quality: domain.QualityRaw, Quantity: 2},
			ok:   true,
		},
		{
			name: "leading quantity",
			line: "3 Water Flask",
			want: requestLine{Name: "Water Flask", Quality: domain.QualityRaw, Quantity: 3},
			ok:   true,
		},
		{
			name: "quality tag",
			line: "Sword of Flame (Enchanted)",
			want: requestLine{Name: "Sword of Flame", Quality: domain.QualityEnchanted, Quantity: 1},
			ok:   true,
		},
		{
			name: "quality tag then quantity",
			line: "Sword of Flame (Legendary) 3",
			want: requestLine{Name: "Sword of Flame", Quality: domain.QualityLegendary, Quantity: 3},
			ok:   true,
		},
		{
			name: "quality tag is case insensitive",
			line: "Sword of Flame (enchanted)",
			want: requestLine{Name: "Sword of Flame", Quality: domain.QualityEnchanted, Quantity: 1},
			ok:   true,
		},
		{
			name: "single numeric token stays a name",
			line: "5",
			want: requestLine{Name: "5", Quality: domain.QualityRaw, Quantity: 1},
			ok:   true,
		},
		{
			name: "zero is not a quantity",
			line: "Mana Battery 0",
			want: requestLine{Name: "Mana Battery 0", Quality: domain.QualityRaw, Quantity: 1},
			ok:   true,
		},
		{
			name: "negative is not a quantity",
			line: "Mana Battery -2",
			want: requestLine{Name: "Mana Battery -2", Quality: domain.QualityRaw, Quantity: 1},
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			line: "  Water Flask   4  ",
			want: requestLine{Name: "Water Flask", Quality: domain.QualityRaw, Quantity: 4},
			ok:   true,
		},
		{
			name: "blank line",
			line: "   ",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseRequestLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
