package app

import "sync"

// expectation tags why a bare numeric message should be accepted as a
// measurement.
type expectation int

const (
	expectNone      expectation = iota
	expectExplicit              // /log issued without a value
	expectScheduled             // morning prompt sent, answer pending
)

type correlation struct {
	state expectation
	// promptID is the message id of the last scheduled prompt. It survives
	// resolution so a structural reply to the prompt is still accepted after
	// the expectation has decayed, e.g. across delayed replies.
	promptID int
}

// CorrelationTracker decides, per user, whether an unprompted numeric
// message answers a pending weight question. State is process-memory only
// and lost on restart.
type CorrelationTracker struct {
	mu    sync.Mutex
	users map[int64]*correlation
}

// NewCorrelationTracker creates an empty tracker.
func NewCorrelationTracker() *CorrelationTracker {
	return &CorrelationTracker{users: make(map[int64]*correlation)}
}

// ArmExplicit marks the user as awaiting the answer to a /log command that
// carried no value.
func (t *CorrelationTracker) ArmExplicit(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.user(userID).state = expectExplicit
}

// ArmScheduled marks the user as awaiting the answer to the scheduled
// morning prompt with the given message id.
func (t *CorrelationTracker) ArmScheduled(userID int64, promptMessageID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.user(userID)
	c.state = expectScheduled
	c.promptID = promptMessageID
}

// Accept reports whether a numeric message should be stored. replyToID is
// the id of the message being replied to, or 0 for a plain message. A
// message is accepted when any expectation is armed, or when it structurally
// replies to the tracked prompt. Accepting resets the expectation.
func (t *CorrelationTracker) Accept(userID int64, replyToID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.users[userID]
	if !ok {
		return false
	}
	if c.state == expectNone && (replyToID == 0 || replyToID != c.promptID) {
		return false
	}
	c.state = expectNone
	return true
}

// Reset clears any pending expectation, e.g. after /log with an explicit
// value, so a stale prompt cannot double-count a later reply.
func (t *CorrelationTracker) Reset(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.users[userID]; ok {
		c.state = expectNone
	}
}

func (t *CorrelationTracker) user(userID int64) *correlation {
	c, ok := t.users[userID]
	if !ok {
		c = &correlation{}
		t.users[userID] = c
	}
	return c
}
