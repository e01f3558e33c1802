package services

import (
	"context"
	"testing"
	"time"
)

func TestPruneSessionsDropsIdleOnes(t *testing.T) {
	fs := NewFeedService(nil, nil, nil, false)
	idleID, _, err := fs.CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	activeID, _, err := fs.CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	fs.mu.Lock()
	fs.lastSeen[idleID] = time.Now().Add(-2 * time.Hour)
	fs.mu.Unlock()

	if pruned := fs.PruneSessions(time.Hour); pruned != 1 {
		t.Fatalf("pruned %d sessions, want 1", pruned)
	}
	if _, err := fs.Session(idleID); err == nil {
		t.Errorf("idle session still resolvable after prune")
	}
	if _, err := fs.Session(activeID); err != nil {
		t.Errorf("active session was pruned: %v", err)
	}
}

func TestSessionLookupRefreshesLastSeen(t *testing.T) {
	fs := NewFeedService(nil, nil, nil, false)
	id, _, err := fs.CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	fs.mu.Lock()
	fs.lastSeen[id] = time.Now().Add(-2 * time.Hour)
	fs.mu.Unlock()

	if _, err := fs.Session(id); err != nil {
		t.Fatalf("Session: %v", err)
	}
	if pruned := fs.PruneSessions(time.Hour); pruned != 0 {
		t.Errorf("pruned %d sessions, want 0 after a fresh lookup", pruned)
	}
}

func TestDropSessionRemovesIt(t *testing.T) {
	fs := NewFeedService(nil, nil, nil, false)
	id, _, err := fs.CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	fs.DropSession(id)
	if _, err := fs.Session(id); err == nil {
		t.Errorf("dropped session still resolvable")
	}
}
