package catalog

import (
	"context"
	"database/sql"
	"errors"
)

// SQLCatalog reads questions from the questions table. Placeholders use the
// $N form, valid for both the pgx and modernc sqlite drivers.
type SQLCatalog struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLCatalog(db *sql.DB, driver string) *SQLCatalog {
	return &SQLCatalog{db: db, driver: driver}
}

const questionCols = `id, question_text, correct_answer,
	COALESCE(distractor_1,''), COALESCE(distractor_2,''), COALESCE(distractor_3,''),
	COALESCE(explanation,''), topic, sub_topic, image_key`

func scanQuestion(row interface{ Scan(...any) error }) (Question, error) {
	var q Question
	var rawAnswer, d1, d2, d3 string
	if err := row.Scan(&q.ID, &q.Text, &rawAnswer, &d1, &d2, &d3,
		&q.Explanation, &q.Topic, &q.SubTopic, &q.ImageKey); err != nil {
		return Question{}, err
	}
	q.Answer = ParseAnswer(rawAnswer)
	q.Distractors = []string{d1, d2, d3}
	return q, nil
}

func (s *SQLCatalog) GetByID(ctx context.Context, id int64) (Question, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+questionCols+` FROM questions WHERE id=$1`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, ErrNotFound
	}
	return q, err
}

func (s *SQLCatalog) ListOrdered(ctx context.Context, topic, subTopic string) ([]Question, error) {
	query := `SELECT ` + questionCols + ` FROM questions`
	var args []any
	switch {
	case topic != "" && subTopic != "":
		query += ` WHERE topic=$1 AND sub_topic=$2 ORDER BY id`
		args = []any{topic, subTopic}
	case topic != "":
		query += ` WHERE topic=$1 ORDER BY sub_topic, id`
		args = []any{topic}
	case subTopic != "":
		query += ` WHERE sub_topic=$1 ORDER BY id`
		args = []any{subTopic}
	default:
		query += ` ORDER BY topic, sub_topic, id`
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLCatalog) DistinctTopics(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT topic FROM questions ORDER BY topic`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLCatalog) DistinctGroups(ctx context.Context) ([]Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT topic, sub_topic FROM questions ORDER BY topic, sub_topic`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.Topic, &g.SubTopic); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *SQLCatalog) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}
