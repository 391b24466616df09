package appointment

import (
	"strings"

	"github.com/pfrederiksen/ttp-appointments/internal/ttp"
)

// FilterLocations returns the IDs of locations whose state code is in the
// allow-list, preserving input order. An empty allow-list matches nothing.
func FilterLocations(locations []ttp.Location, states []string) []int {
	if len(states) == 0 {
		return nil
	}

	allowed := make(map[string]bool, len(states))
	for _, state := range states {
		allowed[strings.ToUpper(strings.TrimSpace(state))] = true
	}

	ids := make([]int, 0, len(locations))
	for i := range locations {
		if allowed[strings.ToUpper(locations[i].State)] {
			ids = append(ids, locations[i].ID)
		}
	}

	return ids
}
