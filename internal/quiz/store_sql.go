package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// SQLSessionStore persists sessions in the sessions table so an exam
// survives a server restart. Order and answers ride along as JSON, the way
// attempt responses are stored.
type SQLSessionStore struct {
	db *sql.DB
}

func NewSQLSessionStore(db *sql.DB) *SQLSessionStore {
	return &SQLSessionStore{db: db}
}

func (s *SQLSessionStore) Get(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, group_label, state, position,
		order_json, answers_json, started_at, COALESCE(finished_at, 0)
		FROM sessions WHERE id=$1`, id)
	var sess Session
	var orderJSON, answersJSON string
	if err := row.Scan(&sess.ID, &sess.GroupLabel, &sess.State, &sess.Position,
		&orderJSON, &answersJSON, &sess.StartedAt, &sess.FinishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNoSession
		}
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(orderJSON), &sess.QuestionOrder); err != nil {
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(answersJSON), &sess.Answers); err != nil {
		return Session{}, err
	}
	if sess.Answers == nil {
		sess.Answers = map[int64][]string{}
	}
	return sess, nil
}

func (s *SQLSessionStore) Put(ctx context.Context, sess Session) error {
	orderJSON, err := json.Marshal(sess.QuestionOrder)
	if err != nil {
		return err
	}
	answersJSON, err := json.Marshal(sess.Answers)
	if err != nil {
		return err
	}
	var finished any
	if sess.FinishedAt != 0 {
		finished = sess.FinishedAt
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO sessions
		(id, group_label, state, position, order_json, answers_json, started_at, finished_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET state=EXCLUDED.state, position=EXCLUDED.position,
			answers_json=EXCLUDED.answers_json, finished_at=EXCLUDED.finished_at`,
		sess.ID, sess.GroupLabel, string(sess.State), sess.Position,
		string(orderJSON), string(answersJSON), sess.StartedAt, finished)
	return err
}

func (s *SQLSessionStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	return err
}
