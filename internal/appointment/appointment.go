package appointment

import (
	"fmt"
	"sort"
	"time"

	"github.com/pfrederiksen/ttp-appointments/internal/ttp"
)

// UnknownLocation is the display name used when a slot's location ID has no
// matching entry in the fetched location list. The scheduler API has been
// observed to return slots for locations absent from the locations endpoint;
// the mismatch is reported as "Unknown" rather than treated as an error.
// TODO: log the raw location ID alongside the sentinel so these mismatches
// can be investigated.
const UnknownLocation = "Unknown"

// DisplayTimeFormat renders timestamps like "Jan 2, 2006 3:04 PM EST"
const DisplayTimeFormat = "Jan 2, 2006 3:04 PM MST"

// Appointment is the normalized, display-ready form of a slot
type Appointment struct {
	LocationID int       `json:"location_id"`
	Location   string    `json:"location"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	StartsAt   time.Time `json:"starts_at"`
}

// FromSlot builds an Appointment from a raw slot, resolving the display name
// by joining against locations and localizing timestamps to loc
func FromSlot(slot ttp.Slot, locations []ttp.Location, loc *time.Location) *Appointment {
	name := UnknownLocation
	for i := range locations {
		if locations[i].ID == slot.LocationID {
			name = locations[i].Name
			break
		}
	}

	start := time.UnixMilli(slot.StartTimestamp).In(loc)
	end := time.UnixMilli(slot.EndTimestamp).In(loc)

	return &Appointment{
		LocationID: slot.LocationID,
		Location:   name,
		Start:      start.Format(DisplayTimeFormat),
		End:        end.Format(DisplayTimeFormat),
		StartsAt:   start,
	}
}

// FromSlots builds Appointments for every slot in input order
func FromSlots(slots []ttp.Slot, locations []ttp.Location, loc *time.Location) []*Appointment {
	appointments := make([]*Appointment, 0, len(slots))
	for _, slot := range slots {
		appointments = append(appointments, FromSlot(slot, locations, loc))
	}
	return appointments
}

// Key returns a stable identity for deduplication across watch ticks
func (a *Appointment) Key() string {
	return fmt.Sprintf("%d|%d", a.LocationID, a.StartsAt.UnixMilli())
}

// SortByStart sorts appointments ascending by start time. Ties are broken by
// location name for deterministic output.
func SortByStart(appointments []*Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].StartsAt.Equal(appointments[j].StartsAt) {
			return appointments[i].StartsAt.Before(appointments[j].StartsAt)
		}
		return appointments[i].Location < appointments[j].Location
	})
}
