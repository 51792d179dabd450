package catalog

import (
	"math/rand"
	"strings"
)

// Question is one multiple-choice record. Immutable once loaded; Text,
// Answer values and Distractors keep their original spelling, comparison
// happens on normalized copies elsewhere.
type Question struct {
	ID          int64    `json:"id"`
	Text        string   `json:"question_text"`
	Answer      Answer   `json:"correct_answer"`
	Distractors []string `json:"distractors,omitempty"` // up to three, blanks allowed
	Explanation string   `json:"explanation,omitempty"`
	Topic       string   `json:"topic"`
	SubTopic    string   `json:"sub_topic"`
	ImageKey    string   `json:"image_key,omitempty"`
}

// Group identifies a (topic, sub_topic) pair, the unit an exam is scoped to.
type Group struct {
	Topic    string `json:"topic"`
	SubTopic string `json:"sub_topic"`
}

// Options returns the values to render in a picker: the correct answer's
// values plus every non-blank distractor, shuffled.
func Options(q Question) []string {
	opts := make([]string, 0, len(q.Answer.Values())+len(q.Distractors))
	opts = append(opts, q.Answer.Values()...)
	for _, d := range q.Distractors {
		if strings.TrimSpace(d) != "" {
			opts = append(opts, d)
		}
	}
	rand.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
