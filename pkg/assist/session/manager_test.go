package session

import (
	"regexp"
	"testing"

	"campus-chatbot-be/internal/repository/memory"
)

var conversationIDPattern = regexp.MustCompile(`^session-[0-9a-f]{8}$`)

func TestLoadOrCreateMintsAndReuses(t *testing.T) {
	m := NewManager(memory.NewSessionRepository())

	first := m.LoadOrCreate("caller-1")
	if !conversationIDPattern.MatchString(first) {
		t.Fatalf("conversation id %q does not match the expected shape", first)
	}

	second := m.LoadOrCreate("caller-1")
	if second != first {
		t.Errorf("same session key must reuse the identifier: %q vs %q", first, second)
	}
}

func TestLoadOrCreateIsolatesSessions(t *testing.T) {
	m := NewManager(memory.NewSessionRepository())

	a := m.LoadOrCreate("caller-a")
	b := m.LoadOrCreate("caller-b")
	if a == b {
		t.Errorf("distinct session keys must get distinct identifiers, both got %q", a)
	}
}

func TestClearForcesFreshConversation(t *testing.T) {
	m := NewManager(memory.NewSessionRepository())

	first := m.LoadOrCreate("caller-1")
	m.Clear("caller-1")
	second := m.LoadOrCreate("caller-1")

	if second == first {
		t.Errorf("clear must discard the identifier, got %q twice", first)
	}
	if !conversationIDPattern.MatchString(second) {
		t.Errorf("reminted id %q does not match the expected shape", second)
	}
}

func TestClearUnknownKeyIsHarmless(t *testing.T) {
	m := NewManager(memory.NewSessionRepository())
	m.Clear("never-seen")
}
