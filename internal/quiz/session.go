package quiz

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyGroup rejects starting an exam over a group with no questions.
	ErrEmptyGroup = errors.New("group has no questions")
	// ErrOutOfRange rejects a navigation target outside [0, len(order)).
	ErrOutOfRange = errors.New("position out of range")
	// ErrEmptySession rejects scoring a session with an empty question order.
	ErrEmptySession = errors.New("session has no questions")
	// ErrSessionFinished rejects mutations on a finished session.
	ErrSessionFinished = errors.New("session already finished")
	// ErrNoSession is a store miss for a session id.
	ErrNoSession = errors.New("session not found")
)

type SessionState string

const (
	StateInProgress SessionState = "in_progress"
	StateFinished   SessionState = "finished"
)

// Session is one exam attempt: a frozen snapshot of question ids, the
// answers given so far, and the current position. Catalog edits after the
// snapshot never change QuestionOrder.
type Session struct {
	ID            string             `json:"id"`
	GroupLabel    string             `json:"group_label"`
	QuestionOrder []int64            `json:"question_order"`
	Answers       map[int64][]string `json:"answers"`
	Position      int                `json:"position"`
	State         SessionState       `json:"state"`
	StartedAt     int64              `json:"started_at"`
	FinishedAt    int64              `json:"finished_at,omitempty"`
}

// NewSession starts an attempt over an ordered id list. The list is copied,
// so later catalog changes cannot reach into the session.
func NewSession(id, groupLabel string, orderedIDs []int64) (Session, error) {
	if len(orderedIDs) == 0 {
		return Session{}, ErrEmptyGroup
	}
	return Session{
		ID:            id,
		GroupLabel:    groupLabel,
		QuestionOrder: append([]int64(nil), orderedIDs...),
		Answers:       map[int64][]string{},
		Position:      0,
		State:         StateInProgress,
		StartedAt:     time.Now().Unix(),
	}, nil
}

// Answer records the submitted values for the question at pos. Resubmitting
// overwrites. A blank submission is not recorded and leaves any previous
// answer for that position intact. Position does not move.
func (s *Session) Answer(pos int, values []string) error {
	if s.State == StateFinished {
		return ErrSessionFinished
	}
	if pos < 0 || pos >= len(s.QuestionOrder) {
		return ErrOutOfRange
	}
	if isBlank(values) {
		return nil
	}
	if s.Answers == nil {
		s.Answers = map[int64][]string{}
	}
	s.Answers[s.QuestionOrder[pos]] = append([]string(nil), values...)
	return nil
}

// Goto moves to target. An out-of-range target fails and leaves the
// position unchanged; there is no silent clamping, a caller stepping past
// the last question is a navigation bug worth surfacing.
func (s *Session) Goto(target int) error {
	if s.State == StateFinished {
		return ErrSessionFinished
	}
	if target < 0 || target >= len(s.QuestionOrder) {
		return ErrOutOfRange
	}
	s.Position = target
	return nil
}

// Next advances one question.
func (s *Session) Next() error { return s.Goto(s.Position + 1) }

// Prev steps back one question.
func (s *Session) Prev() error { return s.Goto(s.Position - 1) }

// Finish moves the session to its terminal state. Idempotent.
func (s *Session) Finish() {
	if s.State == StateFinished {
		return
	}
	s.State = StateFinished
	s.FinishedAt = time.Now().Unix()
}

// AnswerFor returns the stored values for a question id, nil when the
// question was never answered.
func (s *Session) AnswerFor(id int64) []string { return s.Answers[id] }

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// SessionStore keeps sessions by opaque id. The core never touches a global
// store; callers inject one.
type SessionStore interface {
	Get(ctx context.Context, id string) (Session, error)
	Put(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}
