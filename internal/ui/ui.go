// Package ui implements the interactive session: four screens (topic list,
// card review, topic creation, card entry) over a shared card store, driven
// by one key event at a time.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"memflip/internal/config"
	"memflip/internal/history"
	"memflip/internal/store"
)

type mode int

const (
	modeTopics mode = iota
	modeReview
	modeCreateTopic
	modeAddCard
)

type Model struct {
	cards *store.Store
	log   *history.Store
	cfg   config.Config

	mode   mode
	cursor int

	// reviews caches per-topic counts from the history log so the list
	// view does not query SQLite on every render.
	reviews map[string]int

	reviewTopic string
	cardIndex   int
	showAnswer  bool
	lastStudied time.Time

	addTopic        string
	question        textarea.Model
	answer          textarea.Model
	editingQuestion bool

	nameInput textinput.Model

	width  int
	height int
}

// New builds the initial model in topic-selection mode. log may be nil, in
// which case no review history is recorded or shown.
func New(cards *store.Store, log *history.Store, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Topic name"
	ti.CharLimit = 64
	ti.Width = 40

	m := Model{
		cards:     cards,
		log:       log,
		cfg:       cfg,
		mode:      modeTopics,
		nameInput: ti,
		question:  newCardEditor("Type the question"),
		answer:    newCardEditor("Type the answer"),
		reviews:   map[string]int{},
	}
	if log != nil {
		if counts, err := log.TopicCounts(); err == nil {
			m.reviews = counts
		}
	}
	return m
}

func newCardEditor(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	return ta
}

// Run drives the session to completion. The terminal is switched to the
// alternate screen for the duration and restored before returning, error
// paths included.
func Run(cards *store.Store, log *history.Store, cfg config.Config) error {
	program := tea.NewProgram(New(cards, log, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch m.mode {
		case modeReview:
			return m.updateReviewMode(key)
		case modeCreateTopic:
			return m.updateCreateTopicMode(key, msg)
		case modeAddCard:
			return m.updateAddCardMode(key, msg)
		default:
			return m.updateTopicsMode(key)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 8; w > 10 {
			m.nameInput.Width = w
			m.question.SetWidth(w)
			m.answer.SetWidth(w)
		}
	}
	return m, nil
}

func (m Model) updateTopicsMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if n := m.cards.Len(); n > 0 {
			m.cursor = wrapIndex(m.cursor+1, n)
		}
	case m.cfg.Keys.Up, "up":
		if n := m.cards.Len(); n > 0 {
			m.cursor = wrapIndex(m.cursor-1, n)
		}
	case m.cfg.Keys.NewTopic:
		m.mode = modeCreateTopic
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()
	case m.cfg.Keys.AddCard:
		name, ok := m.selectedTopic()
		if !ok {
			return m, nil
		}
		m.mode = modeAddCard
		m.addTopic = name
		m.question.SetValue("")
		m.answer.SetValue("")
		m.editingQuestion = true
		m.answer.Blur()
		return m, m.question.Focus()
	case m.cfg.Keys.Confirm, "enter":
		name, ok := m.selectedTopic()
		if !ok || len(m.cards.Cards(name)) == 0 {
			return m, nil
		}
		m.mode = modeReview
		m.reviewTopic = name
		m.cardIndex = 0
		m.showAnswer = false
		m.loadTopicHistory()
	}
	return m, nil
}

func (m Model) updateReviewMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case m.cfg.Keys.Quit, m.cfg.Keys.Cancel, "esc":
		m.mode = modeTopics
	case m.cfg.Keys.Flip, m.cfg.Keys.Confirm, "enter":
		if len(m.cards.Cards(m.reviewTopic)) == 0 {
			return m, nil
		}
		if !m.showAnswer {
			m.recordReview()
		}
		m.showAnswer = !m.showAnswer
	case m.cfg.Keys.NextCard, "right":
		cards := m.cards.Cards(m.reviewTopic)
		if len(cards) == 0 {
			return m, nil
		}
		m.cardIndex = wrapIndex(m.cardIndex+1, len(cards))
		m.showAnswer = false
	case m.cfg.Keys.PrevCard, "left":
		cards := m.cards.Cards(m.reviewTopic)
		if len(cards) == 0 {
			return m, nil
		}
		m.cardIndex = wrapIndex(m.cardIndex-1, len(cards))
		m.showAnswer = false
	}
	return m, nil
}

func (m Model) updateCreateTopicMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeTopics
		m.nameInput.SetValue("")
		m.nameInput.Blur()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		// An empty name is not an error; the prompt simply stays up.
		if m.cards.CreateTopic(m.nameInput.Value()) {
			m.mode = modeTopics
			m.cursor = 0
			m.nameInput.SetValue("")
			m.nameInput.Blur()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
}

func (m Model) updateAddCardMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeTopics
		m.question.SetValue("")
		m.answer.SetValue("")
		m.question.Blur()
		m.answer.Blur()
		return m, nil
	case m.cfg.Keys.SwitchField, "tab":
		m.editingQuestion = !m.editingQuestion
		if m.editingQuestion {
			m.answer.Blur()
			return m, m.question.Focus()
		}
		m.question.Blur()
		return m, m.answer.Focus()
	case m.cfg.Keys.SaveCard:
		// Rejected saves (blank question or answer) leave the editor as-is.
		if m.cards.AddCard(m.addTopic, m.question.Value(), m.answer.Value()) {
			m.mode = modeTopics
			m.question.SetValue("")
			m.answer.SetValue("")
			m.question.Blur()
			m.answer.Blur()
		}
		return m, nil
	default:
		// Everything else, enter-as-newline and backspace included, goes
		// to whichever editor has focus.
		var cmd tea.Cmd
		if m.editingQuestion {
			m.question, cmd = m.question.Update(msg)
		} else {
			m.answer, cmd = m.answer.Update(msg)
		}
		return m, cmd
	}
}

func (m Model) selectedTopic() (string, bool) {
	names := m.cards.SortedTopicNames()
	if len(names) == 0 {
		return "", false
	}
	return names[clampCursor(m.cursor, len(names))], true
}

func (m *Model) recordReview() {
	if m.log == nil {
		return
	}
	if err := m.log.RecordReview(m.reviewTopic, m.cardIndex); err != nil {
		return
	}
	m.reviews[m.reviewTopic]++
	m.lastStudied = time.Now().UTC()
}

func (m *Model) loadTopicHistory() {
	m.lastStudied = time.Time{}
	if m.log == nil {
		return
	}
	if at, ok, err := m.log.LastReviewed(m.reviewTopic); err == nil && ok {
		m.lastStudied = at
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
