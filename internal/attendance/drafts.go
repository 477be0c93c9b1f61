package attendance

import "github.com/askelund/huddle/internal/roster"

// SeedDrafts builds the complete draft set the attendance editor starts from:
// one record per roster player, existing records copied verbatim and every
// other player defaulted to all-false flags with empty notes.
//
// Seeding before any edit is the editor's core correctness invariant: the
// bulk save always covers the full roster, so a draft set that did not start
// from the persisted state would silently overwrite records the user never
// touched. Saving an unmodified seeded set is a no-op.
func SeedDrafts(players []roster.Player, existing []Record, eventID string) []Record {
	byPlayer := make(map[string]Record, len(existing))
	for _, r := range existing {
		byPlayer[r.PlayerID] = r
	}

	drafts := make([]Record, 0, len(players))
	for _, p := range players {
		if r, ok := byPlayer[p.ID]; ok {
			drafts = append(drafts, r)
			continue
		}
		drafts = append(drafts, Record{PlayerID: p.ID, EventID: eventID})
	}
	return drafts
}
