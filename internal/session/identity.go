package session

import "github.com/google/uuid"

const (
	playerIDKey   = "arenadrift_player_id"
	playerNameKey = "arenadrift_player_name"
)

// Store is a simple persistent key-value surface, localStorage in the
// browser.
type Store interface {
	Get(key string) string
	Set(key, value string)
}

// PlayerID returns the client's stable random identifier, generating and
// persisting one on first use. The same id is reused across all future
// sessions from this client.
func PlayerID(store Store) string {
	if id := store.Get(playerIDKey); id != "" {
		return id
	}
	id := uuid.NewString()
	store.Set(playerIDKey, id)
	return id
}

// PlayerName returns the persisted display name, for prefilling the name
// field on the next load.
func PlayerName(store Store) string {
	return store.Get(playerNameKey)
}

// SavePlayerName persists the display name.
func SavePlayerName(store Store, name string) {
	store.Set(playerNameKey, name)
}
