package quiz

import "github.com/quiz-forge/quizforge/internal/catalog"

// NavEntry is one question slot in the sidebar tree.
type NavEntry struct {
	ID      int64  `json:"id"`
	Ordinal int    `json:"number"` // 1-based within the (topic, sub_topic) group
	Text    string `json:"text"`
}

// NavGroup is one sub_topic with its numbered questions.
type NavGroup struct {
	SubTopic  string     `json:"sub_topic"`
	Questions []NavEntry `json:"questions"`
}

// NavTopic is one topic and its sub_topics, in catalog order.
type NavTopic struct {
	Topic     string     `json:"topic"`
	SubTopics []NavGroup `json:"sub_topics"`
}

// BuildTree walks a catalog snapshot, already sorted by (topic, sub_topic,
// id), and numbers each question within its group. Ordinals come out 1..N
// contiguous per group; rebuilding over the same snapshot gives the same
// tree.
func BuildTree(questions []catalog.Question) []NavTopic {
	var tree []NavTopic
	counter := 0
	for _, q := range questions {
		if len(tree) == 0 || tree[len(tree)-1].Topic != q.Topic {
			tree = append(tree, NavTopic{Topic: q.Topic})
		}
		topic := &tree[len(tree)-1]
		if len(topic.SubTopics) == 0 || topic.SubTopics[len(topic.SubTopics)-1].SubTopic != q.SubTopic {
			topic.SubTopics = append(topic.SubTopics, NavGroup{SubTopic: q.SubTopic})
			counter = 0
		}
		group := &topic.SubTopics[len(topic.SubTopics)-1]
		counter++
		group.Questions = append(group.Questions, NavEntry{
			ID:      q.ID,
			Ordinal: counter,
			Text:    q.Text,
		})
	}
	return tree
}

// Position describes where a question sits inside its group, for prev/next
// links and "question X of Y" display.
type Position struct {
	Ordinal int    `json:"ordinal"`
	Total   int    `json:"total"`
	NextID  *int64 `json:"next_id,omitempty"`
	PrevID  *int64 `json:"prev_id,omitempty"`
}

// PositionWithinGroup locates id in a group listed in ascending id order. A
// stale id that is no longer in the group yields the (1, 1, nil, nil)
// fallback rather than an error.
func PositionWithinGroup(id int64, group []catalog.Question) Position {
	for i, q := range group {
		if q.ID != id {
			continue
		}
		pos := Position{Ordinal: i + 1, Total: len(group)}
		if i+1 < len(group) {
			next := group[i+1].ID
			pos.NextID = &next
		}
		if i > 0 {
			prev := group[i-1].ID
			pos.PrevID = &prev
		}
		return pos
	}
	return Position{Ordinal: 1, Total: 1}
}
