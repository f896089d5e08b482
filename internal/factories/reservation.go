package factories

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/smartres/smartres/internal/models"
)

var fake = faker.New()

// ReservationFactory produces plausible demo reservations for seeding a
// fresh store. Deterministic for a given seed, except for the cuid ids.
type ReservationFactory struct {
	rng *rand.Rand
}

func NewReservationFactory(seed int64) *ReservationFactory {
	return &ReservationFactory{rng: rand.New(rand.NewSource(seed))}
}

func (rf *ReservationFactory) CreateUser() models.User {
	gender := models.GenderFemale
	name := fake.Person().FirstNameFemale()
	if rf.rng.Intn(2) == 0 {
		gender = models.GenderMale
		name = fake.Person().FirstNameMale()
	}
	return models.User{Name: name, Gender: gender}
}

func (rf *ReservationFactory) pickSlot() models.Slot {
	return models.Slots[rf.rng.Intn(len(models.Slots))]
}

// PerDay draws how many reservations a seeded day gets, from 0 to max.
func (rf *ReservationFactory) PerDay(max int) int {
	if max <= 0 {
		return 0
	}
	return rf.rng.Intn(max + 1)
}

// CreateReservation books a random slot on dateKey for a fresh fake user,
// stamping createdAt shortly before the slot's nominal time.
func (rf *ReservationFactory) CreateReservation(dateKey string, day time.Time) models.Reservation {
	user := rf.CreateUser()
	slot := rf.pickSlot()

	nominal, err := time.ParseInLocation("2006-01-02 15:04", dateKey+" "+slot.Time, day.Location())
	if err != nil {
		nominal = day
	}
	createdAt := nominal.Add(-time.Duration(1+rf.rng.Intn(72)) * time.Hour)

	return models.Reservation{
		ID:        cuid.New(),
		Name:      user.Name,
		Gender:    user.Gender,
		Slot:      slot.Key,
		DateStr:   dateKey,
		CreatedAt: createdAt.UnixMilli(),
	}
}
