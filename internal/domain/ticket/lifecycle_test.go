package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLifecycleTransitions(t *testing.T) {
	l := DefaultLifecycle()

	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusNew, StatusSubmitted, true},
		{StatusSubmitted, StatusAccepted, true},
		{StatusSubmitted, StatusRejected, true},
		{StatusSubmitted, StatusPaid, false},
		{StatusAccepted, StatusPaid, true},
		{StatusAccepted, StatusPartiallyPaid, true},
		{StatusPartiallyPaid, StatusPaid, true},
		{StatusRejected, StatusAccepted, false},
		{StatusNew, StatusAccepted, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTransition(t *testing.T) {
	l := DefaultLifecycle()

	tk := &Ticket{Status: StatusSubmitted}
	require.NoError(t, l.Transition(tk, StatusAccepted))
	assert.Equal(t, StatusAccepted, tk.Status)

	require.NoError(t, l.Transition(tk, StatusAccepted), "staying put is always allowed")

	err := l.Transition(tk, StatusSubmitted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusAccepted, tk.Status)

	err = l.Transition(tk, Status("archived"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTerminalAndEditFlags(t *testing.T) {
	l := DefaultLifecycle()

	assert.True(t, l.IsTerminal(StatusPaid))
	assert.True(t, l.IsTerminal(StatusRejected))
	assert.False(t, l.IsTerminal(StatusAccepted))

	assert.True(t, l.RequesterCanEdit(StatusNew))
	assert.True(t, l.RequesterCanEdit(StatusSubmitted))
	assert.False(t, l.RequesterCanEdit(StatusAccepted))
	assert.False(t, l.RequesterCanEdit(StatusPaid))

	assert.True(t, l.RequesterCanEditDocuments(StatusAccepted))
	assert.False(t, l.RequesterCanEditDocuments(StatusPaid))
}

func TestParseLifecycle(t *testing.T) {
	data := []byte(`
new:
  transitions: [submitted]
  requester_edit: true
  requester_docs_edit: true
submitted:
  transitions: [accepted, rejected]
  requester_edit: true
accepted:
  transitions: [paid, partially_paid]
partially_paid:
  transitions: [paid]
paid:
  terminal: true
rejected:
  terminal: true
`)
	l, err := ParseLifecycle(data)
	require.NoError(t, err)
	assert.False(t, l.RequesterCanEditDocuments(StatusSubmitted))
	assert.False(t, l.CanTransition(StatusAccepted, StatusRejected))
	assert.True(t, l.IsTerminal(StatusPaid))
}

func TestParseLifecycleRejectsUnknownStatus(t *testing.T) {
	_, err := ParseLifecycle([]byte("archived:\n  terminal: true\n"))
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseLifecycle([]byte("new:\n  transitions: [done]\n"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseLifecycleRequiresEveryStatus(t *testing.T) {
	_, err := ParseLifecycle([]byte("new:\n  transitions: [submitted]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing status")
}

func TestAckTypes(t *testing.T) {
	assert.True(t, AckUserDocs.UserRemovable())
	assert.False(t, AckDocs.UserRemovable())
	assert.True(t, AckClose.Valid())
	assert.False(t, AckType("bogus").Valid())
	assert.Equal(t, "documents confirmed", AckDocs.Label())
}
