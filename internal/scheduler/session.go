package scheduler

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/store"
)

// RestoreSession reads the logged-in user back from the session store.
// Returns nil when no session exists; a malformed record is logged and
// treated the same way.
func RestoreSession(st *store.FileStore) *models.User {
	raw, ok, err := st.Get(models.SessionUserKey)
	if err != nil {
		log.Printf("Failed to restore session: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("Failed to restore session: %v", err)
		return nil
	}
	return &user
}

// SaveSession records user as the current session identity. Any name is
// accepted, the empty string included.
func SaveSession(st *store.FileStore, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	return st.Set(models.SessionUserKey, raw)
}

// ClearSession removes the session record. Clearing an absent session is
// fine.
func ClearSession(st *store.FileStore) error {
	return st.Remove(models.SessionUserKey)
}
