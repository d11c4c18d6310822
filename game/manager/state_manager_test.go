package manager

import (
	"testing"
	"time"
)

func TestStateTransitions(t *testing.T) {
	sm := NewStateManager()
	t0 := time.Unix(1000, 0)

	if sm.State() != NotStarted {
		t.Fatalf("initial state %v, want %v", sm.State(), NotStarted)
	}
	if !sm.Start(t0) {
		t.Fatalf("Expected Start to succeed")
	}
	if sm.Start(t0.Add(time.Second)) {
		t.Errorf("Expected second Start to be ignored")
	}
	if !sm.StartTime().Equal(t0) {
		t.Errorf("start time %v, want %v", sm.StartTime(), t0)
	}

	t1 := t0.Add(3 * time.Second)
	if !sm.End(WallHit, t1) {
		t.Fatalf("Expected End to succeed")
	}
	if sm.End(Quit, t1.Add(time.Second)) {
		t.Errorf("Expected End after Ended to be ignored")
	}
	if sm.Outcome() != WallHit || !sm.EndTime().Equal(t1) {
		t.Errorf("got (%v, %v), want (%v, %v)", sm.Outcome(), sm.EndTime(), WallHit, t1)
	}
	if sm.Start(t1) {
		t.Errorf("Ended must be terminal")
	}
}

func TestQuitBeforeStart(t *testing.T) {
	sm := NewStateManager()
	if !sm.End(Quit, time.Unix(5, 0)) {
		t.Fatalf("Expected quit to end a session that never started")
	}
	if !sm.Ended() || sm.Running() {
		t.Errorf("state %v, want ended", sm.State())
	}
}

func TestOutcomeFor(t *testing.T) {
	cases := map[CollisionType]Outcome{
		NoCollision:   NoOutcome,
		WallCollision: WallHit,
		SelfCollision: SelfHit,
	}
	for c, want := range cases {
		if got := OutcomeFor(c); got != want {
			t.Errorf("OutcomeFor(%v) = %v, want %v", c, got, want)
		}
	}
}
