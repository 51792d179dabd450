package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quiz-forge/quizforge/internal/catalog"
)

// Service is the outward face of the engine: exam lifecycle, practice-mode
// checks and navigation trees. The catalog and the session store are
// injected; the service holds no ambient state of its own.
type Service struct {
	catalog  catalog.Catalog
	sessions SessionStore
	log      *zap.Logger
}

func NewService(cat catalog.Catalog, sessions SessionStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{catalog: cat, sessions: sessions, log: log}
}

// StartExam snapshots the chosen group's question ids, ascending, into a
// fresh session. A group with zero questions fails with ErrEmptyGroup and
// creates nothing.
func (s *Service) StartExam(ctx context.Context, topic, subTopic string) (Session, error) {
	questions, err := s.catalog.ListOrdered(ctx, topic, subTopic)
	if err != nil {
		return Session{}, err
	}
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	sess, err := NewSession(uuid.NewString(), subTopic, ids)
	if err != nil {
		return Session{}, err
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return Session{}, err
	}
	s.log.Info("exam started",
		zap.String("session_id", sess.ID),
		zap.String("topic", topic),
		zap.String("sub_topic", subTopic),
		zap.Int("questions", len(ids)))
	return sess, nil
}

// GetSession loads a session by handle.
func (s *Service) GetSession(ctx context.Context, handle string) (Session, error) {
	return s.sessions.Get(ctx, handle)
}

// SubmitAnswer stores raw values for the question at pos. Resubmitting the
// same position overwrites; if two requests race, the last write wins.
func (s *Service) SubmitAnswer(ctx context.Context, handle string, pos int, values []string) error {
	sess, err := s.sessions.Get(ctx, handle)
	if err != nil {
		return err
	}
	if err := sess.Answer(pos, values); err != nil {
		return err
	}
	return s.sessions.Put(ctx, sess)
}

// ErrBadAction rejects a navigation verb that is not next, prev or jump.
var ErrBadAction = errors.New("unknown navigation action")

// NavAction names a navigation request.
type NavAction string

const (
	NavNext NavAction = "next"
	NavPrev NavAction = "prev"
	NavJump NavAction = "jump"
)

// Navigate applies a position change and returns the new position. Targets
// outside the question order fail with ErrOutOfRange and move nothing.
func (s *Service) Navigate(ctx context.Context, handle string, action NavAction, target int) (int, error) {
	sess, err := s.sessions.Get(ctx, handle)
	if err != nil {
		return 0, err
	}
	switch action {
	case NavNext:
		err = sess.Next()
	case NavPrev:
		err = sess.Prev()
	case NavJump:
		err = sess.Goto(target)
	default:
		return sess.Position, fmt.Errorf("%w: %q", ErrBadAction, action)
	}
	if err != nil {
		return sess.Position, err
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return sess.Position, err
	}
	return sess.Position, nil
}

// FinishExam moves the session to its terminal state and scores it.
// Finishing an already-finished session just scores it again.
func (s *Service) FinishExam(ctx context.Context, handle string) (Report, error) {
	sess, err := s.sessions.Get(ctx, handle)
	if err != nil {
		return Report{}, err
	}
	sess.Finish()
	if err := s.sessions.Put(ctx, sess); err != nil {
		return Report{}, err
	}
	rep, err := Score(ctx, sess, s.catalog, s.log)
	if err != nil {
		return Report{}, err
	}
	s.log.Info("exam finished",
		zap.String("session_id", sess.ID),
		zap.Int("correct", rep.CorrectCount),
		zap.Int("total", rep.Total),
		zap.Int("percentage", rep.Percentage))
	return rep, nil
}

// ClearSession drops a session from the store.
func (s *Service) ClearSession(ctx context.Context, handle string) error {
	return s.sessions.Delete(ctx, handle)
}

// CheckResult is the practice-mode verdict for a single question.
type CheckResult struct {
	Status        Status `json:"status"`
	IsCorrect     bool   `json:"is_correct"`
	IsPartial     bool   `json:"is_partial"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// CheckAnswer grades one submission against one question, no session
// involved.
func (s *Service) CheckAnswer(ctx context.Context, questionID int64, values []string) (CheckResult, error) {
	q, err := s.catalog.GetByID(ctx, questionID)
	if err != nil {
		return CheckResult{}, err
	}
	m := Match(values, q.Answer.Values())
	return CheckResult{
		Status:        m.Status,
		IsCorrect:     m.IsCorrect,
		IsPartial:     m.IsPartial,
		CorrectAnswer: q.Answer.Display(),
		Explanation:   q.Explanation,
	}, nil
}

// BuildNavigation renders the grouped, numbered sidebar tree from the
// current catalog.
func (s *Service) BuildNavigation(ctx context.Context) ([]NavTopic, error) {
	questions, err := s.catalog.ListOrdered(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return BuildTree(questions), nil
}

// QuestionPage is everything practice mode needs to render one question.
type QuestionPage struct {
	Question catalog.Question `json:"question"`
	Options  []string         `json:"options"`
	Position Position         `json:"position"`
}

// GetQuestionPage loads a question with shuffled options and its place
// within the (topic, sub_topic) group.
func (s *Service) GetQuestionPage(ctx context.Context, id int64) (QuestionPage, error) {
	q, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return QuestionPage{}, err
	}
	group, err := s.catalog.ListOrdered(ctx, q.Topic, q.SubTopic)
	if err != nil {
		return QuestionPage{}, err
	}
	page := QuestionPage{
		Question: q,
		Options:  catalog.Options(q),
		Position: PositionWithinGroup(id, group),
	}
	// the key and the raw distractor list would give the answer away
	page.Question.Answer = catalog.Answer{}
	page.Question.Distractors = nil
	return page, nil
}
