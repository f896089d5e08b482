package scheduler

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/store"
)

// Scheduler is the top-level controller: it owns the hydrated reservation
// map, the session user and the view state, and re-persists the durable
// record after every mutation. One instance per process; no locking is
// needed because every operation runs to completion on the calling
// goroutine.
type Scheduler struct {
	Config       *models.Config
	Local        *store.FileStore
	Session      *store.FileStore
	Reservations models.ReservationMap
	CurrentUser  *models.User
	View         ViewState

	sink OutputDestination
	now  func() time.Time
}

func New(cfg *models.Config) (*Scheduler, error) {
	local, err := store.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open durable store: %w", err)
	}
	session, err := store.New(cfg.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	sink, err := newOutputDestination(cfg)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		Config:       cfg,
		Local:        local,
		Session:      session,
		Reservations: LoadReservations(local),
		CurrentUser:  RestoreSession(session),
		View:         NewViewState(time.Now()),
		sink:         sink,
		now:          time.Now,
	}, nil
}

func (s *Scheduler) Close() error {
	if s.sink != nil {
		return s.sink.Close()
	}
	return nil
}

// Login stores user as the session identity. Subsequent reservations are
// attributed to it.
func (s *Scheduler) Login(user models.User) error {
	s.CurrentUser = &user
	return SaveSession(s.Session, user)
}

// Logout clears the session identity and its persisted record.
func (s *Scheduler) Logout() error {
	s.CurrentUser = nil
	return ClearSession(s.Session)
}

// OpenAddModal arms the confirmation step for slot on the selected date.
func (s *Scheduler) OpenAddModal(slot models.SlotTime) {
	s.View.OpenModal(slot)
}

// ConfirmAdd applies the armed reservation. Without a logged-in user or a
// target slot nothing happens and nil is returned.
func (s *Scheduler) ConfirmAdd() *models.Reservation {
	next, created := AddReservation(s.Reservations, DateKey(s.View.SelectedDate), s.CurrentUser, s.View.TargetSlot, s.now())
	if created == nil {
		return nil
	}
	s.Reservations = next
	s.persist()
	s.emit(models.EventReservationCreated, *created)
	s.View.CloseModal()
	return created
}

// Delete removes the reservation with id, wherever it lives. Unknown ids
// are ignored.
func (s *Scheduler) Delete(id string) *models.Reservation {
	next, removed := DeleteReservation(s.Reservations, DateKey(s.View.SelectedDate), id)
	if removed == nil {
		return nil
	}
	s.Reservations = next
	s.persist()
	s.emit(models.EventReservationDeleted, *removed)
	return removed
}

// ReservationsForSelected returns the selected date's list in insertion
// order.
func (s *Scheduler) ReservationsForSelected() []models.Reservation {
	return s.Reservations[DateKey(s.View.SelectedDate)]
}

func (s *Scheduler) persist() {
	if err := PersistReservations(s.Local, s.Reservations); err != nil {
		log.Printf("Failed to persist reservations: %v", err)
	}
}

type changeEvent struct {
	Type        string             `json:"type"`
	Timestamp   int64              `json:"timestamp"`
	Reservation models.Reservation `json:"reservation"`
}

func (s *Scheduler) emit(topic string, r models.Reservation) {
	if s.sink == nil {
		return
	}
	msg, err := json.Marshal(changeEvent{Type: topic, Timestamp: s.now().Unix(), Reservation: r})
	if err != nil {
		log.Printf("Failed to encode %s event: %v", topic, err)
		return
	}
	if err := s.sink.WriteMessage(topic, msg); err != nil {
		log.Printf("Failed to emit %s event: %v", topic, err)
	}
}
