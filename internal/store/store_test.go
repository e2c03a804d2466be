package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.json"))
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d topics", s.Len())
	}
	if s.Topics == nil {
		t.Fatal("expected initialized topic map")
	}
}

func TestLoadMalformedFileYieldsEmptyStore(t *testing.T) {
	for name, content := range map[string]string{
		"not json":    "this is not json {",
		"wrong shape": `[1, 2, 3]`,
		"null map":    `{"topics_map": null}`,
		"empty file":  "",
	} {
		path := filepath.Join(t.TempDir(), "flashcards.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if s := Load(path); s.Len() != 0 {
			t.Errorf("%s: expected empty store, got %d topics", name, s.Len())
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	s.CreateTopic("math")
	s.CreateTopic("go")
	s.AddCard("math", "2+2?", "4")
	s.AddCard("math", "3*3?", "9")
	s.AddCard("go", "zero value of a map?", "nil")

	path := filepath.Join(t.TempDir(), "flashcards.json")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := Load(path)
	if !reflect.DeepEqual(got.Topics, s.Topics) {
		t.Fatalf("round trip mismatch:\ngot  %#v\nwant %#v", got.Topics, s.Topics)
	}
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	s := New()
	s.CreateTopic("math")
	s.AddCard("math", "2+2?", "4")

	path := filepath.Join(t.TempDir(), "flashcards.json")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "topics_map": {
    "math": [
      {
        "question": "2+2?",
        "answer": "4"
      }
    ]
  }
}`
	if string(data) != want {
		t.Fatalf("unexpected file content:\n%s", data)
	}
}

func TestCreateTopicTrimsAndRejectsEmptyNames(t *testing.T) {
	s := New()
	if s.CreateTopic("") {
		t.Fatal("empty name should be rejected")
	}
	if s.CreateTopic("   \t ") {
		t.Fatal("whitespace-only name should be rejected")
	}
	if s.Len() != 0 {
		t.Fatalf("store should be unchanged, has %d topics", s.Len())
	}
	if !s.CreateTopic("  math  ") {
		t.Fatal("trimmed non-empty name should be accepted")
	}
	if _, ok := s.Topics["math"]; !ok {
		t.Fatalf("expected trimmed key %q, have %v", "math", s.SortedTopicNames())
	}
}

func TestCreateTopicOverwritesExisting(t *testing.T) {
	// Re-creating a topic discards its cards. Last-write-wins is the
	// documented behavior; this test exists so a change to it is deliberate.
	s := New()
	s.CreateTopic("math")
	s.AddCard("math", "2+2?", "4")
	s.AddCard("math", "3+3?", "6")

	s.CreateTopic("math")
	if n := len(s.Cards("math")); n != 0 {
		t.Fatalf("expected recreated topic to have 0 cards, got %d", n)
	}
	if s.Len() != 1 {
		t.Fatalf("expected a single topic, got %d", s.Len())
	}
}

func TestAddCardValidation(t *testing.T) {
	s := New()
	s.CreateTopic("math")

	if s.AddCard("math", "   ", "4") {
		t.Fatal("blank question should be rejected")
	}
	if s.AddCard("math", "2+2?", "\n\t") {
		t.Fatal("blank answer should be rejected")
	}
	if s.AddCard("history", "when?", "then") {
		t.Fatal("unknown topic should be rejected")
	}
	if n := len(s.Cards("math")); n != 0 {
		t.Fatalf("card count should be unchanged, got %d", n)
	}

	if !s.AddCard("math", "  2+2?\n", " 4 ") {
		t.Fatal("valid card should be accepted")
	}
	got := s.Cards("math")[0]
	if got.Question != "2+2?" || got.Answer != "4" {
		t.Fatalf("expected trimmed card, got %+v", got)
	}
}

func TestAddCardPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.CreateTopic("seq")
	for _, q := range []string{"first", "second", "third"} {
		s.AddCard("seq", q, "x")
	}
	cards := s.Cards("seq")
	for i, want := range []string{"first", "second", "third"} {
		if cards[i].Question != want {
			t.Fatalf("card %d = %q, want %q", i, cards[i].Question, want)
		}
	}
}

func TestSortedTopicNamesReflectsMutations(t *testing.T) {
	s := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		s.CreateTopic(name)
	}
	want := []string{"alpha", "mid", "zeta"}
	if got := s.SortedTopicNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	s.CreateTopic("beta")
	want = []string{"alpha", "beta", "mid", "zeta"}
	if got := s.SortedTopicNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after mutation got %v, want %v", got, want)
	}
}
