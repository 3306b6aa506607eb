package session

import (
	"encoding/hex"
	"fmt"

	"campus-chatbot-be/internal/repository/contract"

	"github.com/google/uuid"
)

// Manager hands out the Conversation Identifier for a caller session.
// The identifier is created once per session key and reused on every
// subsequent call until logout or an explicit clear, which is what gives
// the generation agent multi-turn continuity.
type Manager struct {
	repo contract.ConversationRepository
}

func NewManager(repo contract.ConversationRepository) *Manager {
	return &Manager{repo: repo}
}

// LoadOrCreate returns the session's conversation identifier, minting a
// fresh one on first use.
func (m *Manager) LoadOrCreate(sessionKey string) string {
	if id, found := m.repo.Get(sessionKey); found {
		return id
	}
	id := newConversationID()
	m.repo.Save(sessionKey, id)
	return id
}

// Clear discards the identifier, forcing a fresh conversation on the
// next call.
func (m *Manager) Clear(sessionKey string) {
	m.repo.Delete(sessionKey)
}

func newConversationID() string {
	u := uuid.New()
	return fmt.Sprintf("session-%s", hex.EncodeToString(u[:])[:8])
}
