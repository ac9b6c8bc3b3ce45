package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
)

// Roster holds the externally supplied id classifications: which item ids
// each class can use, and which ids are known spells per spellcasting
// class. Immutable for the lifetime of one refresh cycle.
type Roster struct {
	itemIDsByClass  map[string][]int
	spellIDsByClass map[string][]int
	spellIDSet      map[int]struct{}
}

// NewRoster builds a roster from explicit id maps. Class keys are
// lowercased canonical names.
func NewRoster(itemIDsByClass, spellIDsByClass map[string][]int) *Roster {
	r := &Roster{
		itemIDsByClass:  itemIDsByClass,
		spellIDsByClass: spellIDsByClass,
		spellIDSet:      make(map[int]struct{}),
	}
	if r.itemIDsByClass == nil {
		r.itemIDsByClass = make(map[string][]int)
	}
	if r.spellIDsByClass == nil {
		r.spellIDsByClass = make(map[string][]int)
	}
	for _, ids := range r.spellIDsByClass {
		for _, id := range ids {
			r.spellIDSet[id] = struct{}{}
		}
	}
	return r
}

// EmptyRoster returns a roster with no classifications. Classification
// degrades gracefully: items index fine, class lists stay empty.
func EmptyRoster() *Roster {
	return NewRoster(nil, nil)
}

// IsSpellID reports whether the id appears in any class's spell roster.
func (r *Roster) IsSpellID(id int) bool {
	_, ok := r.spellIDSet[id]
	return ok
}

// ClassesForItem returns every class whose item roster claims the id, in
// canonical class order so index builds are deterministic.
func (r *Roster) ClassesForItem(id int) []string {
	var classes []string
	for _, class := range domain.AllClasses {
		for _, candidate := range r.itemIDsByClass[class] {
			if candidate == id {
				classes = append(classes, class)
				break
			}
		}
	}
	return classes
}

// SpellClassCount returns how many classes have a loaded spell roster.
func (r *Roster) SpellClassCount() int {
	return len(r.spellIDsByClass)
}

// rosterExportRe matches the exported id array in a per-class roster file,
// e.g. "export const BardSpells = [123, 456];".
var rosterExportRe = regexp.MustCompile(`export const \w+ = \[([\s\S]*?)\];`)

// parseRosterExport extracts the id list from a TypeScript roster file.
func parseRosterExport(content string) ([]int, bool) {
	match := rosterExportRe.FindStringSubmatch(content)
	if match == nil {
		return nil, false
	}

	var ids []int
	for _, tok := range strings.Split(whitespaceRe.ReplaceAllString(match[1], ""), ",") {
		if tok == "" {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, true
}

// RosterLoader fetches roster data from the guild bank website.
type RosterLoader struct {
	baseURL string
	client  *http.Client
}

// NewRosterLoader creates a loader for the given assets base URL.
func NewRosterLoader(baseURL string, client *http.Client) *RosterLoader {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &RosterLoader{baseURL: baseURL, client: client}
}

// Load fetches the item-ids-by-class map and every spellcasting class's
// spell roster. Individual fetch failures degrade to warnings; the error is
// non-nil only when nothing at all could be loaded.
func (l *RosterLoader) Load(ctx context.Context) (*Roster, error) {
	log := logger.FromContext(ctx)

	itemIDs, err := l.fetchItemIDsByClass(ctx)
	if err != nil {
		log.Warn("Could not load item class map, class search will be limited", "error", err)
	}

	spellIDs := make(map[string][]int)
	for _, class := range domain.SpellcastingClasses {
		ids, err := l.fetchSpellIDs(ctx, class)
		if err != nil {
			log.Warn("Could not load spell roster", "class", class, "error", err)
			continue
		}
		spellIDs[class] = ids
		log.Debug("Loaded spell roster", "class", class, "spells", len(ids))
	}

	if len(itemIDs) == 0 && len(spellIDs) == 0 {
		return EmptyRoster(), fmt.Errorf("%w: no roster data at %s", domain.ErrRosterUnavailable, l.baseURL)
	}

	log.Info("Roster data loaded",
		"itemClasses", len(itemIDs),
		"spellClasses", len(spellIDs))
	return NewRoster(itemIDs, spellIDs), nil
}

func (l *RosterLoader) fetchItemIDsByClass(ctx context.Context) (map[string][]int, error) {
	body, err := l.fetch(ctx, "item-ids-by-class.json")
	if err != nil {
		return nil, err
	}

	var raw map[string][]int
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse item class map: %w", err)
	}

	// Class keys arrive capitalized; the index works in lowercase.
	itemIDs := make(map[string][]int, len(raw))
	for class, ids := range raw {
		itemIDs[strings.ToLower(class)] = ids
	}
	return itemIDs, nil
}

func (l *RosterLoader) fetchSpellIDs(ctx context.Context, class string) ([]int, error) {
	body, err := l.fetch(ctx, fmt.Sprintf("@spells/%s-spells.ts", class))
	if err != nil {
		return nil, err
	}

	ids, ok := parseRosterExport(string(body))
	if !ok {
		return nil, fmt.Errorf("no exported id array in %s roster", class)
	}
	return ids, nil
}

func (l *RosterLoader) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}
	return io.ReadAll(resp.Body)
}
