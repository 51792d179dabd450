package catalog

import (
	"context"
	"sort"
	"sync"
)

type memoryCatalog struct {
	mu        sync.RWMutex
	questions map[int64]Question
}

// NewInMemory builds a Catalog held entirely in process memory. Used for
// tests and for running without a database.
func NewInMemory(questions ...Question) Catalog {
	m := &memoryCatalog{questions: map[int64]Question{}}
	for _, q := range questions {
		m.questions[q.ID] = q
	}
	return m
}

func (m *memoryCatalog) GetByID(_ context.Context, id int64) (Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.questions[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	return q, nil
}

func (m *memoryCatalog) ListOrdered(_ context.Context, topic, subTopic string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Question, 0, len(m.questions))
	for _, q := range m.questions {
		if topic != "" && q.Topic != topic {
			continue
		}
		if subTopic != "" && q.SubTopic != subTopic {
			continue
		}
		out = append(out, q)
	}
	// a filter pinning a single sub_topic lists by plain id, like the SQL
	// catalog's ORDER BY clauses
	if subTopic != "" {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return out, nil
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		if out[i].SubTopic != out[j].SubTopic {
			return out[i].SubTopic < out[j].SubTopic
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryCatalog) DistinctTopics(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]struct{}{}
	var out []string
	for _, q := range m.questions {
		if _, ok := seen[q.Topic]; ok {
			continue
		}
		seen[q.Topic] = struct{}{}
		out = append(out, q.Topic)
	}
	sort.Strings(out)
	return out, nil
}

func (m *memoryCatalog) DistinctGroups(_ context.Context) ([]Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[Group]struct{}{}
	var out []Group
	for _, q := range m.questions {
		g := Group{Topic: q.Topic, SubTopic: q.SubTopic}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].SubTopic < out[j].SubTopic
	})
	return out, nil
}

func (m *memoryCatalog) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.questions), nil
}
