package quiz

import (
	"errors"
	"testing"
)

func newTestSession(t *testing.T) Session {
	t.Helper()
	s, err := NewSession("s1", "Chapter 1", []int64{10, 11, 12})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionEmptyGroup(t *testing.T) {
	if _, err := NewSession("s1", "Chapter 9", nil); !errors.Is(err, ErrEmptyGroup) {
		t.Fatalf("err = %v, want ErrEmptyGroup", err)
	}
}

func TestNewSessionCopiesOrder(t *testing.T) {
	ids := []int64{10, 11, 12}
	s, _ := NewSession("s1", "g", ids)
	ids[0] = 99
	if s.QuestionOrder[0] != 10 {
		t.Fatal("session shares the caller's id slice")
	}
}

func TestSessionAnswer(t *testing.T) {
	s := newTestSession(t)

	if err := s.Answer(0, []string{"Paris"}); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got := s.AnswerFor(10); len(got) != 1 || got[0] != "Paris" {
		t.Fatalf("stored = %v", got)
	}
	if s.Position != 0 {
		t.Fatal("Answer moved the position")
	}

	// resubmitting overwrites
	if err := s.Answer(0, []string{"London"}); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got := s.AnswerFor(10); got[0] != "London" {
		t.Fatalf("overwrite failed, stored = %v", got)
	}

	// a blank submission is dropped and the previous answer survives
	if err := s.Answer(0, []string{"  "}); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got := s.AnswerFor(10); got[0] != "London" {
		t.Fatalf("blank submission clobbered the answer: %v", got)
	}

	if err := s.Answer(5, []string{"x"}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestSessionGotoBounds(t *testing.T) {
	s := newTestSession(t)
	if err := s.Goto(2); err != nil {
		t.Fatalf("Goto(2): %v", err)
	}

	for _, target := range []int{-1, 3, 100} {
		if err := s.Goto(target); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Goto(%d) err = %v, want ErrOutOfRange", target, err)
		}
		if s.Position != 2 {
			t.Fatalf("failed Goto(%d) moved position to %d", target, s.Position)
		}
	}
}

func TestSessionNextPrev(t *testing.T) {
	s := newTestSession(t)
	if err := s.Next(); err != nil || s.Position != 1 {
		t.Fatalf("Next: err=%v pos=%d", err, s.Position)
	}
	if err := s.Prev(); err != nil || s.Position != 0 {
		t.Fatalf("Prev: err=%v pos=%d", err, s.Position)
	}
	if err := s.Prev(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Prev at 0: err = %v, want ErrOutOfRange", err)
	}
	s.Position = 2
	if err := s.Next(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Next at end: err = %v, want ErrOutOfRange", err)
	}
}

func TestSessionFinishIdempotent(t *testing.T) {
	s := newTestSession(t)
	s.Finish()
	if s.State != StateFinished {
		t.Fatalf("state = %q", s.State)
	}
	at := s.FinishedAt
	s.Finish()
	if s.State != StateFinished || s.FinishedAt != at {
		t.Fatal("second Finish changed the terminal state")
	}

	if err := s.Answer(0, []string{"x"}); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("Answer after finish: err = %v", err)
	}
	if err := s.Goto(1); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("Goto after finish: err = %v", err)
	}
}
