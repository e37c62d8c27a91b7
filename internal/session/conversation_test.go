package session

import (
	"testing"

	"github.com/google/uuid"
)

func TestConversationAppendAndAttach(t *testing.T) {
	c := NewConversation()
	e := c.Append(Entry{DubbingID: "abc123"})
	if e.ID == uuid.Nil || e.CreatedAt.IsZero() {
		t.Fatalf("append should assign id and timestamp: %+v", e)
	}

	if !c.AttachTranscript(e.ID, "target", "hola") {
		t.Fatal("first target transcript should attach")
	}
	if c.AttachTranscript(e.ID, "target", "again") {
		t.Fatal("target transcript must not be replaced")
	}
	if c.AttachTranscript(e.ID, "subtitles", "x") {
		t.Fatal("unknown role accepted")
	}
	if c.AttachTranscript(uuid.New(), "source", "x") {
		t.Fatal("unknown entry accepted")
	}

	entries := c.Entries()
	entries[0].DubbingID = "mutated"
	if got := c.Entries()[0]; got.DubbingID != "abc123" || got.TargetTranscript != "hola" {
		t.Fatalf("entries = %+v", got)
	}
}
