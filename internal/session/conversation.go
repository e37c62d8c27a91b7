package session

import (
	"sync"
	"time"

	"dub-translator/pkg/constants"

	"github.com/google/uuid"
)

// Entry is a completed job as shown in the conversation log.
type Entry struct {
	ID               uuid.UUID
	DubbingID        string
	SourceLang       string
	TargetLang       string
	SourceAudio      []byte
	DubbedAudio      []byte
	SourceTranscript string
	TargetTranscript string
	CreatedAt        time.Time
}

// Conversation is an append-only log; only transcripts are attached after the fact.
type Conversation struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewConversation() *Conversation {
	return &Conversation{}
}

func (c *Conversation) Append(e Entry) Entry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()
	return e
}

// AttachTranscript sets the source or target transcript of an entry once.
func (c *Conversation) AttachTranscript(id uuid.UUID, role, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID != id {
			continue
		}
		switch role {
		case "source":
			if c.entries[i].SourceTranscript != "" {
				return false
			}
			c.entries[i].SourceTranscript = text
		case constants.DefaultTranscriptRole:
			if c.entries[i].TargetTranscript != "" {
				return false
			}
			c.entries[i].TargetTranscript = text
		default:
			return false
		}
		return true
	}
	return false
}

func (c *Conversation) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
