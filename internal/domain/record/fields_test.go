package record

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/scouting/internal/domain"
)

type note struct {
	ID    string
	Title string
	Score *int
	Tags  []string
}

func (n note) RecordID() string { return n.ID }

func (n note) Serialize() Fields {
	var score any
	if n.Score != nil {
		score = *n.Score
	}
	return Fields{"id": n.ID, "title": n.Title, "score": score, "tags": n.Tags}
}

var noteCodec = Codec[note]{
	Name:       "Note",
	Attributes: []string{"id", "title", "score", "tags"},
	Decode: func(r *Reader) note {
		return note{
			ID:    r.String("id"),
			Title: r.String("title"),
			Score: r.OptionalInt("score"),
			Tags:  r.StringList("tags"),
		}
	},
}

func TestNormalize_StripsMarkersAndPrefersPlainKeys(t *testing.T) {
	got := Normalize(map[string]any{"_id": "n1", "_title": "old", "title": "new", "_": "x"})

	if got["id"] != "n1" {
		t.Fatalf("unexpected id: %v", got["id"])
	}
	if got["title"] != "new" {
		t.Fatalf("plain key should win, got %v", got["title"])
	}
	if _, ok := got["_id"]; ok {
		t.Fatalf("marked key should be dropped: %v", got)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected fields: %v", got)
	}
}

func TestFields_ID(t *testing.T) {
	if id := (Fields{"id": "a"}).ID(); id != "a" {
		t.Fatalf("unexpected id: %q", id)
	}
	if id := (Fields{"_id": "b"}).ID(); id != "b" {
		t.Fatalf("unexpected legacy id: %q", id)
	}
	if id := (Fields{"id": 12}).ID(); id != "" {
		t.Fatalf("non-string id should be empty, got %q", id)
	}
}

func TestCodec_DeserializeRoundTrip(t *testing.T) {
	score := 7
	in := note{ID: "n1", Title: "scouting", Score: &score, Tags: []string{"a", "b"}}

	out, err := noteCodec.Deserialize(in.Serialize())
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if out.ID != in.ID || out.Title != in.Title || out.Score == nil || *out.Score != 7 {
		t.Fatalf("unexpected note: %+v", out)
	}
	if len(out.Tags) != 2 || out.Tags[1] != "b" {
		t.Fatalf("unexpected tags: %v", out.Tags)
	}
}

func TestCodec_DeserializeAcceptsDecodedJSON(t *testing.T) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(`{"_id":"n2","title":"t","score":3,"tags":["x"]}`), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := noteCodec.Deserialize(raw)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if out.ID != "n2" || *out.Score != 3 || out.Tags[0] != "x" {
		t.Fatalf("unexpected note: %+v", out)
	}
}

func TestCodec_DeserializeRejectsBadRows(t *testing.T) {
	cases := map[string]map[string]any{
		"nil":            nil,
		"missing title":  {"id": "n1", "score": nil, "tags": nil},
		"wrong type":     {"id": "n1", "title": 5, "score": nil, "tags": nil},
		"fraction score": {"id": "n1", "title": "t", "score": 1.5, "tags": nil},
		"bad tag":        {"id": "n1", "title": "t", "score": nil, "tags": []any{"a", 2}},
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := noteCodec.Deserialize(raw); !errors.Is(err, domain.ErrFormat) {
				t.Fatalf("expected ErrFormat, got %v", err)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	for _, v := range []any{4, int32(4), int64(4), 4.0, json.Number("4")} {
		n, err := toInt(v)
		if err != nil || n != 4 {
			t.Fatalf("toInt(%T) = %d, %v", v, n, err)
		}
	}
	if _, err := toInt("4"); err == nil {
		t.Fatalf("expected error for string")
	}
}

func TestReader_KeepsFirstError(t *testing.T) {
	r := NewReader("Note", Fields{"title": 1})
	_ = r.String("title")
	_ = r.String("missing")

	if err := r.Err(); err == nil || !errors.Is(err, domain.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if got := r.Err().Error(); !strings.Contains(got, "Note.title") {
		t.Fatalf("first error should name title, got %q", got)
	}
}
