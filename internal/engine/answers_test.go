package engine

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswersUnmarshalWireShapes(t *testing.T) {
	raw := []byte(`{
		"age-range": "26-35",
		"affected-areas": ["Edges (front hairline)", "Crown (top of head)"],
		"noticed-when": null
	}`)
	var a Answers
	if err := json.Unmarshal(raw, &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Str(QAgeRange) != "26-35" {
		t.Fatalf("single: got %q", a.Str(QAgeRange))
	}
	want := []string{"Edges (front hairline)", "Crown (top of head)"}
	if !reflect.DeepEqual(a.List(QAffectedAreas), want) {
		t.Fatalf("multi: got %v", a.List(QAffectedAreas))
	}
	if a[QNoticedWhen].Answered() {
		t.Fatalf("null should be unanswered")
	}
}

func TestAnswersUnmarshalRejectsOtherTypes(t *testing.T) {
	var a Answers
	if err := json.Unmarshal([]byte(`{"age-range": 35}`), &a); err == nil {
		t.Fatalf("expected error for numeric answer")
	}
	if err := json.Unmarshal([]byte(`{"affected-areas": [1,2]}`), &a); err == nil {
		t.Fatalf("expected error for non-string array entries")
	}
}

func TestAnswersTolerantAccessors(t *testing.T) {
	a := Answers{
		QAgeRange:      Single("36-45"),
		QAffectedAreas: Multi("Edges"),
	}
	if a.Str(QAffectedAreas) != "" {
		t.Fatalf("Str on a multi value must be empty")
	}
	if a.List(QAgeRange) != nil {
		t.Fatalf("List on a single value must be nil")
	}
	if a.Str("never-asked") != "" || a.List("never-asked") != nil {
		t.Fatalf("missing ids must read as unanswered")
	}
}

func TestValueMarshalRoundTrip(t *testing.T) {
	a := Answers{
		QAgeRange:      Single("26-35"),
		QAffectedAreas: Multi("Edges", "Temples"),
		QNoticedWhen:   {},
	}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Answers
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Str(QAgeRange) != "26-35" {
		t.Fatalf("round trip single: got %q", back.Str(QAgeRange))
	}
	if !reflect.DeepEqual(back.List(QAffectedAreas), []string{"Edges", "Temples"}) {
		t.Fatalf("round trip multi: got %v", back.List(QAffectedAreas))
	}
}
