package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	DefaultTopic    = "כללי"
	DefaultSubTopic = "ללא פרק"
)

// QuestionRecord is the JSON file shape for one question. Only question_text
// and correct_answer are required; missing topic/sub_topic fall back to the
// defaults.
type QuestionRecord struct {
	Text        string `json:"question_text"`
	Answer      string `json:"correct_answer"`
	Distractor1 string `json:"distractor_1,omitempty"`
	Distractor2 string `json:"distractor_2,omitempty"`
	Distractor3 string `json:"distractor_3,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Topic       string `json:"topic,omitempty"`
	SubTopic    string `json:"sub_topic,omitempty"`
	ImageKey    string `json:"image_key,omitempty"`
}

// DecodeRecords reads a questions file body: either a JSON array of records
// or one bare record object.
func DecodeRecords(r io.Reader) ([]QuestionRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var recs []QuestionRecord
		if err := json.Unmarshal(raw, &recs); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		return recs, nil
	}
	var rec QuestionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}
	return []QuestionRecord{rec}, nil
}

// Loader writes question records into the questions table.
type Loader struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewLoader(db *sql.DB, driver string) *Loader {
	return &Loader{db: db, driver: driver}
}

// Replace wipes the table and inserts the given records, returning how many
// were inserted. Records missing required fields are skipped, not fatal.
// The id sequence restarts at 1 so reloading the same file yields the same
// ids.
func (l *Loader) Replace(ctx context.Context, recs []QuestionRecord) (int, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return 0, err
	}
	if err := resetSequence(ctx, tx, l.driver); err != nil {
		return 0, err
	}

	count := 0
	for _, rec := range recs {
		n, err := insertRecord(ctx, tx, rec)
		if err != nil {
			return 0, err
		}
		count += n
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// Insert appends records without touching existing rows.
func (l *Loader) Insert(ctx context.Context, recs []QuestionRecord) (int, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	count := 0
	for _, rec := range recs {
		n, err := insertRecord(ctx, tx, rec)
		if err != nil {
			return 0, err
		}
		count += n
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// LoadFile replaces the table contents with the records of a JSON file.
// A missing file is not an error; it just loads nothing.
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()
	recs, err := DecodeRecords(f)
	if err != nil {
		return 0, err
	}
	return l.Replace(ctx, recs)
}

func resetSequence(ctx context.Context, tx *sql.Tx, driver string) error {
	var err error
	switch driver {
	case "postgres":
		_, err = tx.ExecContext(ctx, `ALTER SEQUENCE questions_id_seq RESTART WITH 1`)
	default: // sqlite
		_, err = tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name='questions'`)
	}
	return err
}

func insertRecord(ctx context.Context, tx *sql.Tx, rec QuestionRecord) (int, error) {
	if strings.TrimSpace(rec.Text) == "" || strings.TrimSpace(rec.Answer) == "" {
		return 0, nil // incomplete record, skip
	}
	topic := rec.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	subTopic := rec.SubTopic
	if subTopic == "" {
		subTopic = DefaultSubTopic
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO questions
		(question_text, correct_answer, distractor_1, distractor_2, distractor_3, explanation, topic, sub_topic, image_key)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rec.Text, rec.Answer, rec.Distractor1, rec.Distractor2, rec.Distractor3,
		rec.Explanation, topic, subTopic, rec.ImageKey)
	if err != nil {
		return 0, err
	}
	return 1, nil
}
