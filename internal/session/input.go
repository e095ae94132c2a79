package session

// InputKind marks what the user's next plain-text message should be
// parsed as, overriding the normal watermark-text interpretation. The
// flag is orthogonal to the pending session state.
type InputKind int

const (
	InputNone InputKind = iota
	// InputTransparency expects a 0-100 opacity percentage.
	InputTransparency
)

// AwaitInput marks the user's next plain-text message for parsing as the
// given kind.
func (m *Manager) AwaitInput(userID int64, kind InputKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if kind == InputNone {
		delete(m.inputs, userID)
		return
	}
	m.inputs[userID] = kind
}

// PendingInput reports what the user's next message is marked as, without
// clearing the flag. Callers clear explicitly on successful use; invalid
// input keeps the flag so the user can retry.
func (m *Manager) PendingInput(userID int64) InputKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inputs[userID]
}

// ClearInput unconditionally drops the user's input flag. Also called
// whenever the user issues a command while a flag is set.
func (m *Manager) ClearInput(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inputs, userID)
}
