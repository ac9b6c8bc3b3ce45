package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	t.Run("bank slot line with quality suffix", func(t *testing.T) {
		p, ok := ParseLine("Bank1-Slot3 Sword of Flame (Enchanted) 1001 3 1")
		assert.True(t, ok)
		assert.Equal(t, "Sword of Flame (Enchanted)", p.Name)
		assert.Equal(t, "Bank1-Slot3", p.Location)
		assert.Equal(t, 1001, p.ID)
		assert.Equal(t, 3, p.Count)
		assert.Equal(t, 1, p.Slots)
	})

	t.Run("tab separated columns", func(t *testing.T) {
		p, ok := ParseLine("General1\tWater Flask\t10010\t5\t1")
		assert.True(t, ok)
		assert.Equal(t, "Water Flask", p.Name)
		assert.Equal(t, "General1", p.Location)
		assert.Equal(t, 10010, p.ID)
		assert.Equal(t, 5, p.Count)
	})

	t.Run("no slot prefix keeps full name", func(t *testing.T) {
		p, ok := ParseLine("Velium Tower Shield 2001 1 1")
		assert.True(t, ok)
		assert.Equal(t, "Velium Tower Shield", p.Name)
		assert.Equal(t, "", p.Location)
	})

	t.Run("equipment slot prefix", func(t *testing.T) {
		p, ok := ParseLine("Primary Sword of Flame 1001 1 1")
		assert.True(t, ok)
		assert.Equal(t, "Sword of Flame", p.Name)
		assert.Equal(t, "Primary", p.Location)
	})

	t.Run("empty slot line is dropped", func(t *testing.T) {
		_, ok := ParseLine("General2 Empty 0 0 0")
		assert.False(t, ok)
	})

	t.Run("blank line is dropped", func(t *testing.T) {
		_, ok := ParseLine("   ")
		assert.False(t, ok)
	})

	t.Run("line without integer columns is dropped", func(t *testing.T) {
		_, ok := ParseLine("Some decorative text")
		assert.False(t, ok)
	})

	t.Run("surrounding whitespace is collapsed", func(t *testing.T) {
		p, ok := ParseLine("  Bank2-Slot1   Mithril  Breastplate   3002  1  1  ")
		assert.True(t, ok)
		assert.Equal(t, "Mithril Breastplate", p.Name)
		assert.Equal(t, "Bank2-Slot1", p.Location)
		assert.Equal(t, 3002, p.ID)
	})
}

func TestParseFile(t *testing.T) {
	t.Run("header line is dropped", func(t *testing.T) {
		content := "Location\tName\tID\tCount\tSlots\n" +
			"Bank1-Slot1\tWater Flask\t10010\t5\t1\n" +
			"Bank1-Slot2\tVelium Tower Shield\t2001\t1\t1\n"

		parsed := ParseFile(content)
		assert.Len(t, parsed, 2)
		assert.Equal(t, "Water Flask", parsed[0].Name)
		assert.Equal(t, "Velium Tower Shield", parsed[1].Name)
	})

	t.Run("structural UI export is skipped wholesale", func(t *testing.T) {
		assert.Nil(t, ParseFile("[General]\nsomething=1\n"))
		assert.Nil(t, ParseFile("Header\n[Abilities]\nAbility1=Kick\n"))
		assert.Nil(t, ParseFile("Header\n[HotButtons]\nButton1=1\n"))
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		content := "Bank1-Slot1 Water Flask 10010 5 1\n\n\nBank1-Slot2 Velium Tower Shield 2001 1 1\n"
		parsed := ParseFile(content)
		assert.Len(t, parsed, 2)
	})

	t.Run("first data line is kept when no header present", func(t *testing.T) {
		parsed := ParseFile("Bank1-Slot1 Water Flask 10010 5 1\n")
		assert.Len(t, parsed, 1)
	})
}
