package automod

import "testing"

func TestSpamGuardAllowsBurstThenBlocks(t *testing.T) {
	g := NewSpamGuard()
	for i := 0; i < spamBurst; i++ {
		if !g.Allow("g1", "u1") {
			t.Fatalf("message %d within burst should be allowed", i+1)
		}
	}
	if g.Allow("g1", "u1") {
		t.Fatal("message beyond burst should be blocked")
	}
}

func TestSpamGuardIsolatesMembers(t *testing.T) {
	g := NewSpamGuard()
	for i := 0; i < spamBurst; i++ {
		g.Allow("g1", "u1")
	}
	if !g.Allow("g1", "u2") {
		t.Fatal("a different member must have their own budget")
	}
	if !g.Allow("g2", "u1") {
		t.Fatal("the same member in a different guild must have their own budget")
	}
}
