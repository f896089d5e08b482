package scheduler

import (
	"testing"

	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/store"
)

func TestSessionRoundTrip(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	user := models.User{Name: "Park", Gender: models.GenderFemale}
	if err := SaveSession(st, user); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got := RestoreSession(st)
	if got == nil {
		t.Fatal("RestoreSession returned nil")
	}
	if *got != user {
		t.Errorf("RestoreSession = %v, want %v", *got, user)
	}
}

func TestSessionEmptyNameAllowed(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := SaveSession(st, models.User{Name: "", Gender: models.GenderMale}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	got := RestoreSession(st)
	if got == nil || got.Name != "" {
		t.Errorf("RestoreSession = %v, want empty name user", got)
	}
}

func TestRestoreSessionAbsent(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if got := RestoreSession(st); got != nil {
		t.Errorf("RestoreSession = %v, want nil", got)
	}
}

func TestRestoreSessionMalformed(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Set(models.SessionUserKey, []byte("not json at all")); err != nil {
		t.Fatal(err)
	}

	if got := RestoreSession(st); got != nil {
		t.Errorf("RestoreSession = %v, want nil after malformed record", got)
	}
}

func TestClearSession(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := SaveSession(st, models.User{Name: "Park", Gender: models.GenderFemale}); err != nil {
		t.Fatal(err)
	}
	if err := ClearSession(st); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if got := RestoreSession(st); got != nil {
		t.Errorf("RestoreSession = %v after clear, want nil", got)
	}

	// Clearing again is a no-op.
	if err := ClearSession(st); err != nil {
		t.Errorf("second ClearSession: %v", err)
	}
}
