package quiz

// Status classifies one compared answer.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPartial Status = "partial"
	StatusWrong   Status = "wrong"
)

// MatchResult is the outcome of comparing a user's selection against the
// answer key for one question.
type MatchResult struct {
	Status    Status `json:"status"`
	IsCorrect bool   `json:"is_correct"`
	IsPartial bool   `json:"is_partial"`
	// Missing and Extra are meaningful on a partial result: how many key
	// values the user did not pick, and how many picks were not in the key.
	Missing int `json:"missing,omitempty"`
	Extra   int `json:"extra,omitempty"`
}

// Match compares user-selected values against the correct values as
// normalized sets. Order and duplicate encodings do not matter. A fully
// matching non-empty selection is correct; any overlap short of that is
// partial; no overlap (including an empty selection) is wrong. Never fails.
func Match(user, correct []string) MatchResult {
	u := toSet(user)
	c := toSet(correct)

	inter := 0
	for tok := range u {
		if _, ok := c[tok]; ok {
			inter++
		}
	}

	res := MatchResult{Status: StatusWrong}
	switch {
	case len(u) > 0 && len(u) == len(c) && inter == len(c):
		res.Status = StatusCorrect
		res.IsCorrect = true
	case inter > 0:
		res.Status = StatusPartial
		res.IsPartial = true
		res.Missing = len(c) - inter
		res.Extra = len(u) - inter
	}
	return res
}

// toSet normalizes each entry into a comparison set. Blank raw entries are
// dropped; a present entry that normalizes to "" still counts as a member,
// so "no selection" is decided by cardinality, not by token emptiness.
func toSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		if v == "" {
			continue
		}
		set[Normalize(v)] = struct{}{}
	}
	return set
}
