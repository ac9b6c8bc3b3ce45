package inventory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

func TestParseRosterExport(t *testing.T) {
	t.Run("extracts id array", func(t *testing.T) {
		ids, ok := parseRosterExport("export const WizardSpells = [1001, 1002,\n  1003];")
		assert.True(t, ok)
		assert.Equal(t, []int{1001, 1002, 1003}, ids)
	})

	t.Run("empty array", func(t *testing.T) {
		ids, ok := parseRosterExport("export const BardSpells = [];")
		assert.True(t, ok)
		assert.Empty(t, ids)
	})

	t.Run("no export block", func(t *testing.T) {
		_, ok := parseRosterExport("const spells = {1: true}")
		assert.False(t, ok)
	})

	t.Run("non numeric tokens are skipped", func(t *testing.T) {
		ids, ok := parseRosterExport("export const ClericSpells = [10, oops, 20];")
		assert.True(t, ok)
		assert.Equal(t, []int{10, 20}, ids)
	})
}

func TestRoster(t *testing.T) {
	roster := NewRoster(
		map[string][]int{"warrior": {100, 200}, "wizard": {200}},
		map[string][]int{"wizard": {5001, 5002}},
	)

	t.Run("IsSpellID", func(t *testing.T) {
		assert.True(t, roster.IsSpellID(5001))
		assert.False(t, roster.IsSpellID(100))
	})

	t.Run("ClassesForItem in canonical order", func(t *testing.T) {
		assert.Equal(t, []string{"warrior", "wizard"}, roster.ClassesForItem(200))
		assert.Equal(t, []string{"warrior"}, roster.ClassesForItem(100))
		assert.Empty(t, roster.ClassesForItem(999))
	})

	t.Run("SpellClassCount", func(t *testing.T) {
		assert.Equal(t, 1, roster.SpellClassCount())
	})

	t.Run("empty roster claims nothing", func(t *testing.T) {
		empty := EmptyRoster()
		assert.False(t, empty.IsSpellID(5001))
		assert.Empty(t, empty.ClassesForItem(200))
	})
}

func TestRosterLoader(t *testing.T) {
	t.Run("loads item map and spell rosters", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/item-ids-by-class.json":
				w.Write([]byte(`{"Warrior": [100], "Wizard": [200]}`))
			case "/@spells/wizard-spells.ts":
				w.Write([]byte("export const WizardSpells = [5001, 5002];"))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		roster, err := NewRosterLoader(srv.URL, srv.Client()).Load(context.Background())
		require.NoError(t, err)

		// Class keys are lowercased on load.
		assert.Equal(t, []string{"warrior"}, roster.ClassesForItem(100))
		assert.Equal(t, []string{"wizard"}, roster.ClassesForItem(200))
		assert.True(t, roster.IsSpellID(5001))
		assert.Equal(t, 1, roster.SpellClassCount())
	})

	t.Run("degrades to empty roster when nothing loads", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		roster, err := NewRosterLoader(srv.URL, srv.Client()).Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrRosterUnavailable)
		require.NotNil(t, roster)
		assert.False(t, roster.IsSpellID(5001))
	})

	t.Run("partial spell roster failure is tolerated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/@spells/cleric-spells.ts" {
				w.Write([]byte("export const ClericSpells = [6001];"))
				return
			}
			http.NotFound(w, r)
		}))
		defer srv.Close()

		roster, err := NewRosterLoader(srv.URL, srv.Client()).Load(context.Background())
		require.NoError(t, err)
		assert.True(t, roster.IsSpellID(6001))
		assert.Equal(t, 1, roster.SpellClassCount())
	})
}
