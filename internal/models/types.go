package models

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type SlotTime string

const (
	SlotMorning SlotTime = "Morning"
	SlotLunch   SlotTime = "Lunch"
	SlotDinner  SlotTime = "Dinner"
)

// Slot describes one of the three fixed daily slots together with its
// static label and nominal serving time.
type Slot struct {
	Key   SlotTime `json:"key"`
	Label string   `json:"label"`
	Time  string   `json:"time"`
}

var Slots = []Slot{
	{Key: SlotMorning, Label: "Morning", Time: "07:00"},
	{Key: SlotLunch, Label: "Lunch", Time: "12:00"},
	{Key: SlotDinner, Label: "Dinner", Time: "19:00"},
}

// User is the currently logged-in identity. Identity is by name only;
// there is no account record beyond the session entry.
type User struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
}

// Reservation is immutable once created. Name and gender are copied from
// the user at creation time rather than referenced.
type Reservation struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Gender    Gender   `json:"gender"`
	Slot      SlotTime `json:"slot"`
	DateStr   string   `json:"dateStr"`
	CreatedAt int64    `json:"createdAt"`
}

// ReservationMap keys reservations by calendar date ("YYYY-MM-DD"). Lists
// keep insertion order. A key holding an empty list is valid and distinct
// from an absent key.
type ReservationMap map[string][]Reservation

func ValidSlot(s SlotTime) bool {
	switch s {
	case SlotMorning, SlotLunch, SlotDinner:
		return true
	}
	return false
}

// ParseSlotTime accepts the canonical slot names case-insensitively.
func ParseSlotTime(s string) (SlotTime, error) {
	for _, slot := range Slots {
		if strings.EqualFold(string(slot.Key), s) {
			return slot.Key, nil
		}
	}
	return "", fmt.Errorf("unknown slot %q (want morning, lunch or dinner)", s)
}

func ParseGender(s string) (Gender, error) {
	switch {
	case strings.EqualFold(string(GenderMale), s):
		return GenderMale, nil
	case strings.EqualFold(string(GenderFemale), s):
		return GenderFemale, nil
	}
	return "", fmt.Errorf("unknown gender %q (want male or female)", s)
}
