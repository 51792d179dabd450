package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/quiz-forge/quizforge/internal/catalog"
	"github.com/quiz-forge/quizforge/internal/quiz"
)

func ListTopicsHandler(cat catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := cat.DistinctTopics(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		total, err := cat.Count(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"topics":          topics,
			"total_questions": total,
		})
	}
}

func ListGroupsHandler(cat catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := cat.DistinctGroups(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, groups)
	}
}

func NavigationHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tree, err := svc.BuildNavigation(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tree)
	}
}

func GetQuestionHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "questionID"), 10, 64)
		if err != nil {
			http.Error(w, "bad question id", 400)
			return
		}
		page, err := svc.GetQuestionPage(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func CheckAnswerHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuestionID int64        `json:"question_id"`
			Value      answerValues `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		res, err := svc.CheckAnswer(r.Context(), req.QuestionID, req.Value)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// ImportQuestionsHandler ingests a JSON questions file body: an array of
// records or a single record. ?mode=append keeps existing rows.
func ImportQuestionsHandler(loader *catalog.Loader, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := catalog.DecodeRecords(r.Body)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		var n int
		if r.URL.Query().Get("mode") == "append" {
			n, err = loader.Insert(r.Context(), recs)
		} else {
			n, err = loader.Replace(r.Context(), recs)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		log.Info("questions imported", zap.Int("count", n))
		writeJSON(w, http.StatusOK, map[string]int{"imported": n})
	}
}
