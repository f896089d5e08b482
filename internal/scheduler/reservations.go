package scheduler

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/lucsky/cuid"
	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/store"
)

// NewReservation builds an immutable reservation record attributed to user.
func NewReservation(user *models.User, slot models.SlotTime, dateKey string, now time.Time) models.Reservation {
	return models.Reservation{
		ID:        cuid.New(),
		Name:      user.Name,
		Gender:    user.Gender,
		Slot:      slot,
		DateStr:   dateKey,
		CreatedAt: now.UnixMilli(),
	}
}

// AddReservation appends a fresh reservation under dateKey and returns the
// updated map plus the created record. The input map is never mutated;
// callers still holding it see no change. A nil user or unknown slot is a
// no-op: the input map is returned as-is and the record is nil.
func AddReservation(m models.ReservationMap, dateKey string, user *models.User, slot models.SlotTime, now time.Time) (models.ReservationMap, *models.Reservation) {
	if user == nil || !models.ValidSlot(slot) {
		return m, nil
	}

	created := NewReservation(user, slot, dateKey, now)

	next := cloneMap(m)
	list := m[dateKey]
	updated := make([]models.Reservation, len(list), len(list)+1)
	copy(updated, list)
	next[dateKey] = append(updated, created)

	return next, &created
}

// DeleteReservation removes at most one reservation by id and returns the
// updated map plus the removed record. The list under selectedKey is checked
// first; when the id is not there, every list is scanned and the first match
// wins. A list left empty by the removal keeps its key. An unknown id is a
// no-op: the input map is returned as-is and the record is nil.
func DeleteReservation(m models.ReservationMap, selectedKey, id string) (models.ReservationMap, *models.Reservation) {
	key, found := selectedKey, containsID(m[selectedKey], id)
	if !found {
		for k, list := range m {
			if containsID(list, id) {
				key, found = k, true
				break
			}
		}
	}
	if !found {
		return m, nil
	}

	next := cloneMap(m)
	updated := make([]models.Reservation, 0, len(m[key])-1)
	var removed models.Reservation
	for _, r := range m[key] {
		if r.ID == id {
			removed = r
			continue
		}
		updated = append(updated, r)
	}
	next[key] = updated

	return next, &removed
}

// cloneMap copies the top-level map only. Lists are shared with the input
// until replaced, which is safe because reservations are immutable and
// every mutation swaps in a freshly built list.
func cloneMap(m models.ReservationMap) models.ReservationMap {
	next := make(models.ReservationMap, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}

func containsID(list []models.Reservation, id string) bool {
	for _, r := range list {
		if r.ID == id {
			return true
		}
	}
	return false
}

// LoadReservations hydrates the reservation map from the durable store.
// Absent or malformed records degrade to an empty map with a log line; the
// caller never sees an error.
func LoadReservations(st *store.FileStore) models.ReservationMap {
	raw, ok, err := st.Get(models.ReservationsKey)
	if err != nil {
		log.Printf("Failed to load reservations: %v", err)
		return models.ReservationMap{}
	}
	if !ok {
		return models.ReservationMap{}
	}

	var m models.ReservationMap
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Printf("Failed to load reservations: %v", err)
		return models.ReservationMap{}
	}
	if m == nil {
		m = models.ReservationMap{}
	}
	return m
}

// PersistReservations overwrites the durable record with the full map.
func PersistReservations(st *store.FileStore, m models.ReservationMap) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode reservations: %w", err)
	}
	return st.Set(models.ReservationsKey, raw)
}
