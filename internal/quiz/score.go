package quiz

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/quiz-forge/quizforge/internal/catalog"
)

// QuestionResult is one row of the final breakdown. Displays carry the
// original spelling of the answers, never the normalized form.
type QuestionResult struct {
	QuestionID    int64  `json:"question_id"`
	Text          string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Status        Status `json:"status"`
	IsCorrect     bool   `json:"is_correct"`
	IsPartial     bool   `json:"is_partial"`
	Explanation   string `json:"explanation,omitempty"`
}

// Report is the outcome of a finished exam.
type Report struct {
	Percentage   int              `json:"percentage"`
	CorrectCount int              `json:"correct_count"`
	Total        int              `json:"total"`
	GroupLabel   string           `json:"group_label"`
	PerQuestion  []QuestionResult `json:"per_question"`
}

// Score replays a session against the catalog. Questions the catalog no
// longer has are skipped and logged rather than failing the whole report;
// an unanswered question scores as wrong with an empty user display.
func Score(ctx context.Context, sess Session, cat catalog.Catalog, log *zap.Logger) (Report, error) {
	if len(sess.QuestionOrder) == 0 {
		return Report{}, ErrEmptySession
	}

	rep := Report{GroupLabel: sess.GroupLabel}
	for _, id := range sess.QuestionOrder {
		q, err := cat.GetByID(ctx, id)
		if errors.Is(err, catalog.ErrNotFound) {
			log.Warn("question missing from catalog, skipping",
				zap.Int64("question_id", id),
				zap.String("session_id", sess.ID))
			continue
		}
		if err != nil {
			return Report{}, err
		}

		user := sess.AnswerFor(id)
		m := Match(user, q.Answer.Values())
		rep.Total++
		if m.IsCorrect {
			rep.CorrectCount++
		}
		rep.PerQuestion = append(rep.PerQuestion, QuestionResult{
			QuestionID:    id,
			Text:          q.Text,
			UserAnswer:    strings.Join(user, ", "),
			CorrectAnswer: q.Answer.Display(),
			Status:        m.Status,
			IsCorrect:     m.IsCorrect,
			IsPartial:     m.IsPartial,
			Explanation:   q.Explanation,
		})
	}

	if rep.Total > 0 {
		rep.Percentage = 100 * rep.CorrectCount / rep.Total
	}
	return rep, nil
}
