package ticket

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Status string

const (
	StatusNew           Status = "new"
	StatusSubmitted     Status = "submitted"
	StatusAccepted      Status = "accepted"
	StatusRejected      Status = "rejected"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
)

var allStatuses = []Status{
	StatusNew,
	StatusSubmitted,
	StatusAccepted,
	StatusRejected,
	StatusPartiallyPaid,
	StatusPaid,
}

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown ticket status")
)

func (s Status) Valid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsAccepted reports whether expenses of a ticket in this state count as
// accepted for payment.
func (s Status) IsAccepted() bool {
	return s == StatusAccepted || s == StatusPartiallyPaid || s == StatusPaid
}

// StatusRule is one row of the lifecycle table.
type StatusRule struct {
	Transitions       []Status `yaml:"transitions"`
	RequesterEdit     bool     `yaml:"requester_edit"`
	RequesterDocsEdit bool     `yaml:"requester_docs_edit"`
	Terminal          bool     `yaml:"terminal"`
}

// Lifecycle is the status table consulted by both the permission resolver and
// the status transitions. It is read-only after construction.
type Lifecycle struct {
	rules map[Status]StatusRule
}

func DefaultLifecycle() *Lifecycle {
	return &Lifecycle{rules: map[Status]StatusRule{
		StatusNew: {
			Transitions:       []Status{StatusSubmitted},
			RequesterEdit:     true,
			RequesterDocsEdit: true,
		},
		StatusSubmitted: {
			Transitions:       []Status{StatusAccepted, StatusRejected},
			RequesterEdit:     true,
			RequesterDocsEdit: true,
		},
		StatusAccepted: {
			Transitions:       []Status{StatusPartiallyPaid, StatusPaid, StatusRejected},
			RequesterDocsEdit: true,
		},
		StatusPartiallyPaid: {
			Transitions:       []Status{StatusPaid, StatusAccepted},
			RequesterDocsEdit: true,
		},
		StatusPaid: {
			// payment corrections only; edits stay frozen
			Transitions: []Status{StatusPartiallyPaid, StatusAccepted},
			Terminal:    true,
		},
		StatusRejected: {
			Terminal: true,
		},
	}}
}

// LoadLifecycle reads a status table from a YAML file keyed by status name.
// Every status must be present so that no state silently loses its rules.
func LoadLifecycle(path string) (*Lifecycle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lifecycle file: %w", err)
	}
	return ParseLifecycle(data)
}

func ParseLifecycle(data []byte) (*Lifecycle, error) {
	raw := map[Status]StatusRule{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse lifecycle: %w", err)
	}
	for s, rule := range raw {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
		}
		for _, to := range rule.Transitions {
			if !to.Valid() {
				return nil, fmt.Errorf("%w: %q (transition from %q)", ErrUnknownStatus, to, s)
			}
		}
	}
	for _, s := range allStatuses {
		if _, ok := raw[s]; !ok {
			return nil, fmt.Errorf("lifecycle is missing status %q", s)
		}
	}
	return &Lifecycle{rules: raw}, nil
}

func (l *Lifecycle) rule(s Status) StatusRule {
	return l.rules[s]
}

func (l *Lifecycle) CanTransition(from, to Status) bool {
	for _, next := range l.rule(from).Transitions {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the ticket to the given status if the table allows it.
func (l *Lifecycle) Transition(t *Ticket, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if t.Status == to {
		return nil
	}
	if !l.CanTransition(t.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, to)
	}
	t.Status = to
	return nil
}

func (l *Lifecycle) RequesterCanEdit(s Status) bool {
	return l.rule(s).RequesterEdit
}

func (l *Lifecycle) RequesterCanEditDocuments(s Status) bool {
	return l.rule(s).RequesterDocsEdit
}

func (l *Lifecycle) IsTerminal(s Status) bool {
	return l.rule(s).Terminal
}
