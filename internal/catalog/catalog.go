package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no question exists for a requested id.
var ErrNotFound = errors.New("question not found")

// Catalog is the read path over the question store. Listing is always
// ordered: (topic, sub_topic, id) ascending, or plain id ascending when the
// filter pins a single sub_topic.
type Catalog interface {
	GetByID(ctx context.Context, id int64) (Question, error)
	// ListOrdered returns questions filtered by topic and/or subTopic; an
	// empty string leaves that dimension unfiltered.
	ListOrdered(ctx context.Context, topic, subTopic string) ([]Question, error)
	DistinctTopics(ctx context.Context) ([]string, error)
	DistinctGroups(ctx context.Context) ([]Group, error)
	Count(ctx context.Context) (int, error)
}
