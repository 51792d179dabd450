package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/quiz-forge/quizforge/internal/catalog"
	"github.com/quiz-forge/quizforge/internal/quiz"
)

func testRouter() chi.Router {
	cat := catalog.NewInMemory(
		catalog.Question{ID: 10, Topic: "Geo", SubTopic: "Chapter 1", Text: "Capital of France?",
			Answer: catalog.SingleAnswer("Paris")},
		catalog.Question{ID: 11, Topic: "Geo", SubTopic: "Chapter 1", Text: "Capital of the UK?",
			Answer: catalog.SingleAnswer("London")},
	)
	svc := quiz.NewService(cat, quiz.NewMemoryStore(), zap.NewNop())

	r := chi.NewRouter()
	r.Post("/exams", StartExamHandler(svc))
	r.Get("/exams/{sessionID}", GetSessionHandler(svc))
	r.Post("/exams/{sessionID}/answers", SubmitAnswerHandler(svc))
	r.Post("/exams/{sessionID}/navigate", NavigateHandler(svc))
	r.Post("/exams/{sessionID}/finish", FinishExamHandler(svc))
	r.Post("/check", CheckAnswerHandler(svc))
	return r
}

func do(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExamFlowHTTP(t *testing.T) {
	r := testRouter()

	w := do(t, r, "POST", "/exams", `{"topic":"Geo","sub_topic":"Chapter 1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("start: %d %s", w.Code, w.Body)
	}
	var sess quiz.Session
	if err := json.Unmarshal(w.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	w = do(t, r, "POST", "/exams/"+sess.ID+"/answers", `{"position":0,"value":"Paris"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("answer: %d %s", w.Code, w.Body)
	}

	w = do(t, r, "POST", "/exams/"+sess.ID+"/navigate", `{"action":"next"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("navigate: %d %s", w.Code, w.Body)
	}
	var nav struct {
		Position int `json:"position"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &nav)
	if nav.Position != 1 {
		t.Fatalf("position = %d, want 1", nav.Position)
	}

	// stepping past the last question is a conflict, not a clamp
	w = do(t, r, "POST", "/exams/"+sess.ID+"/navigate", `{"action":"next"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("overstep: %d %s", w.Code, w.Body)
	}

	// an unknown verb is the client's mistake, not a server failure
	w = do(t, r, "POST", "/exams/"+sess.ID+"/navigate", `{"action":"sideways"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad action: %d %s", w.Code, w.Body)
	}

	w = do(t, r, "POST", "/exams/"+sess.ID+"/finish", ``)
	if w.Code != http.StatusOK {
		t.Fatalf("finish: %d %s", w.Code, w.Body)
	}
	var rep quiz.Report
	_ = json.Unmarshal(w.Body.Bytes(), &rep)
	if rep.Total != 2 || rep.CorrectCount != 1 {
		t.Fatalf("report = %+v", rep)
	}
}

func TestStartExamEmptyGroupHTTP(t *testing.T) {
	r := testRouter()
	w := do(t, r, "POST", "/exams", `{"topic":"Geo","sub_topic":"Chapter 9"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty group: %d %s", w.Code, w.Body)
	}
}

func TestCheckAnswerHTTP(t *testing.T) {
	r := testRouter()

	w := do(t, r, "POST", "/check", `{"question_id":10,"value":["paris!!"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("check: %d %s", w.Code, w.Body)
	}
	var res quiz.CheckResult
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if !res.IsCorrect || res.CorrectAnswer != "Paris" {
		t.Fatalf("result = %+v", res)
	}

	w = do(t, r, "POST", "/check", `{"question_id":404,"value":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing question: %d", w.Code)
	}
}

func TestUnknownSessionHTTP(t *testing.T) {
	r := testRouter()
	w := do(t, r, "GET", "/exams/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown session: %d", w.Code)
	}
}
