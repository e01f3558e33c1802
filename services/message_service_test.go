package services

import "testing"

func TestConversationIDSymmetric(t *testing.T) {
	if a, b := ConversationID("u1", "u2"), ConversationID("u2", "u1"); a != b {
		t.Errorf("ConversationID not symmetric: %q vs %q", a, b)
	}
}

func TestConversationIDOrdersPair(t *testing.T) {
	if got := ConversationID("zeta", "alpha"); got != "alpha#zeta" {
		t.Errorf("ConversationID = %q, want %q", got, "alpha#zeta")
	}
}
