package app_test

import (
	"testing"

	"weightbot/internal/app"
)

func TestIdleBareNumberDropped(t *testing.T) {
	tracker := app.NewCorrelationTracker()
	if tracker.Accept(1, 0) {
		t.Fatal("bare number with no expectation must be dropped")
	}
}

func TestExplicitArmAcceptsOnce(t *testing.T) {
	tracker := app.NewCorrelationTracker()
	tracker.ArmExplicit(1)
	if !tracker.Accept(1, 0) {
		t.Fatal("number after /log without value must be accepted")
	}
	if tracker.Accept(1, 0) {
		t.Fatal("expectation must reset after acceptance")
	}
}

func TestScheduledArmAcceptsPlainNumber(t *testing.T) {
	tracker := app.NewCorrelationTracker()
	tracker.ArmScheduled(1, 42)
	// A plain (non-reply) number is accepted while the prompt is pending.
	if !tracker.Accept(1, 0) {
		t.Fatal("number after scheduled prompt must be accepted")
	}
}

func TestStructuralReplyMatchesAfterDecay(t *testing.T) {
	tracker := app.NewCorrelationTracker()
	tracker.ArmScheduled(1, 42)
	tracker.Reset(1) // expectation decayed, prompt id must survive

	if tracker.Accept(1, 0) {
		t.Fatal("plain number must be dropped once the expectation decayed")
	}
	if !tracker.Accept(1, 42) {
		t.Fatal("structural reply to the tracked prompt must still be accepted")
	}
	if tracker.Accept(1, 7) {
		t.Fatal("reply to an unrelated message must be dropped")
	}
}

func TestResetClearsExpectation(t *testing.T) {
	tracker := app.NewCorrelationTracker()
	tracker.ArmExplicit(1)
	tracker.Reset(1)
	if tracker.Accept(1, 0) {
		t.Fatal("expectation must be cleared by an explicit-value log")
	}
}

func TestPerUserIsolation(t *testing.T) {
	tracker := app.NewCorrelationTracker()
	tracker.ArmExplicit(1)
	if tracker.Accept(2, 0) {
		t.Fatal("user 2 must not inherit user 1's expectation")
	}
	if !tracker.Accept(1, 0) {
		t.Fatal("user 1's expectation must be unaffected by user 2's message")
	}
}
