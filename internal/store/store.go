// Package store holds the flashcard collection and its JSON persistence.
package store

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
)

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Store maps topic names to their cards. Card order within a topic is
// insertion order and defines review order.
type Store struct {
	Topics map[string][]Flashcard `json:"topics_map"`
}

func New() *Store {
	return &Store{Topics: map[string][]Flashcard{}}
}

// Load reads the card file at path. A missing file or unparseable content
// yields an empty store; corruption is never surfaced to the caller.
func Load(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		return New()
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil || s.Topics == nil {
		return New()
	}
	return &s
}

// Save writes the store as pretty-printed JSON, replacing any existing file.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// CreateTopic inserts an empty card list under the trimmed name and reports
// whether the store changed. An existing topic with the same name is
// replaced, cards included.
func (s *Store) CreateTopic(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	s.Topics[name] = []Flashcard{}
	return true
}

// AddCard appends a card to the named topic and reports whether it was
// stored. Question and answer are trimmed; either being empty, or the topic
// not existing, rejects the card.
func (s *Store) AddCard(topic, question, answer string) bool {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return false
	}
	cards, ok := s.Topics[topic]
	if !ok {
		return false
	}
	s.Topics[topic] = append(cards, Flashcard{Question: question, Answer: answer})
	return true
}

// SortedTopicNames returns a fresh alphabetical snapshot of the topic names.
// Positional addressing (the selection cursor) always goes through this.
func (s *Store) SortedTopicNames() []string {
	names := make([]string, 0, len(s.Topics))
	for name := range s.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Cards(topic string) []Flashcard {
	return s.Topics[topic]
}

func (s *Store) Len() int {
	return len(s.Topics)
}
