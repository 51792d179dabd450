package catalog

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		multi  bool
		values []string
	}{
		{name: "plain single", raw: "Paris", values: []string{"Paris"}},
		{name: "single with comma stays single", raw: "Washington, D.C.", values: []string{"Washington, D.C."}},
		{name: "serialized list", raw: `["Paris","London"]`, multi: true, values: []string{"Paris", "London"}},
		{name: "serialized list with spaces", raw: `  ["A","B"]  `, multi: true, values: []string{"A", "B"}},
		{name: "malformed list falls back to single", raw: `["Paris",`, values: []string{`["Paris",`}},
		{name: "non-string array falls back to single", raw: `[1,2]`, values: []string{`[1,2]`}},
		{name: "empty list falls back to single", raw: `[]`, values: []string{`[]`}},
		{name: "empty string", raw: "", values: []string{""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := ParseAnswer(tc.raw)
			if a.IsMulti() != tc.multi {
				t.Fatalf("IsMulti = %v, want %v", a.IsMulti(), tc.multi)
			}
			if got := a.Values(); !reflect.DeepEqual(got, tc.values) {
				t.Fatalf("Values = %v, want %v", got, tc.values)
			}
		})
	}
}

func TestAnswerDisplay(t *testing.T) {
	if got := SingleAnswer("Paris").Display(); got != "Paris" {
		t.Fatalf("Display = %q", got)
	}
	if got := MultiAnswer([]string{"A", "B"}).Display(); got != "A, B" {
		t.Fatalf("Display = %q", got)
	}
}

func TestAnswerEncodeRoundTrip(t *testing.T) {
	for _, raw := range []string{"Paris", `["Paris","London"]`} {
		a := ParseAnswer(raw)
		b := ParseAnswer(a.Encode())
		if !reflect.DeepEqual(a.Values(), b.Values()) || a.IsMulti() != b.IsMulti() {
			t.Fatalf("round trip of %q lost information", raw)
		}
	}
}

func TestAnswerJSON(t *testing.T) {
	var q Question
	body := `{"id":1,"question_text":"t","correct_answer":["A","B"],"topic":"T","sub_topic":"S"}`
	if err := json.Unmarshal([]byte(body), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !q.Answer.IsMulti() || len(q.Answer.Values()) != 2 {
		t.Fatalf("answer = %+v", q.Answer)
	}

	out, err := json.Marshal(q.Answer)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `["A","B"]` {
		t.Fatalf("marshal = %s", out)
	}

	single := SingleAnswer("Paris")
	out, _ = json.Marshal(single)
	if string(out) != `"Paris"` {
		t.Fatalf("marshal = %s", out)
	}
}

func TestAnswerIsZero(t *testing.T) {
	if !(Answer{}).IsZero() {
		t.Fatal("zero Answer not zero")
	}
	if !SingleAnswer("  ").IsZero() {
		t.Fatal("blank answer not zero")
	}
	if SingleAnswer("x").IsZero() {
		t.Fatal("real answer reported zero")
	}
}
