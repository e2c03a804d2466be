package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("238"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeReview:
		body = m.viewReview()
	case modeCreateTopic:
		body = m.viewCreateTopic()
	case modeAddCard:
		body = m.viewAddCard()
	default:
		body = m.viewTopics()
	}
	return appStyle.Render(body)
}

func (m Model) viewTopics() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Memory Flip Flashcards"))
	b.WriteString("\n\n")

	names := m.cards.SortedTopicNames()
	if len(names) == 0 {
		b.WriteString("No topics yet!\n\n")
		b.WriteString(fmt.Sprintf("Press '%s' to create your first topic.", m.cfg.Keys.NewTopic))
	} else {
		cursor := clampCursor(m.cursor, len(names))
		for i, name := range names {
			line := fmt.Sprintf("%s  (%s)", name, m.topicSummary(name))
			if i == cursor {
				b.WriteString(selectedStyle.Render("▶ " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	k := m.cfg.Keys
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s/%s move · %s review · %s new topic · %s add card · %s quit",
		k.Up, k.Down, keyName(k.Confirm), k.NewTopic, k.AddCard, k.Quit)))
	return b.String()
}

func (m Model) topicSummary(name string) string {
	n := len(m.cards.Cards(name))
	summary := fmt.Sprintf("%d cards", n)
	if n == 1 {
		summary = "1 card"
	}
	if r := m.reviews[name]; r > 0 {
		summary += fmt.Sprintf(" · %d reviews", r)
	}
	return summary
}

func (m Model) viewReview() string {
	cards := m.cards.Cards(m.reviewTopic)
	if len(cards) == 0 {
		return "No cards available"
	}
	idx := clampCursor(m.cardIndex, len(cards))
	card := cards[idx]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — card %d/%d", m.reviewTopic, idx+1, len(cards))))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render("Q: " + card.Question))
	b.WriteString("\n\n")
	if m.showAnswer {
		b.WriteString(answerStyle.Render("A: " + card.Answer))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("[press '%s' to reveal the answer]", keyName(m.cfg.Keys.Flip))))
	}
	b.WriteString("\n\n")

	if r := m.reviews[m.reviewTopic]; r > 0 {
		stats := fmt.Sprintf("%d reviews", r)
		if r == 1 {
			stats = "1 review"
		}
		if !m.lastStudied.IsZero() {
			stats += " · last studied " + m.lastStudied.Local().Format("2006-01-02 15:04")
		}
		b.WriteString(mutedStyle.Render(stats))
		b.WriteString("\n")
	}

	k := m.cfg.Keys
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s flip · %s next · %s previous · %s back",
		keyName(k.Flip), k.NextCard, k.PrevCard, k.Cancel)))
	return b.String()
}

func (m Model) viewCreateTopic() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Topic"))
	b.WriteString("\n\n")
	b.WriteString("Enter topic name:")
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	k := m.cfg.Keys
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s create · %s cancel", keyName(k.Confirm), k.Cancel)))
	return b.String()
}

func (m Model) viewAddCard() string {
	qTitle := "Question"
	aTitle := "Answer"
	if m.editingQuestion {
		qTitle = activeStyle.Render("Question ✎")
	} else {
		aTitle = activeStyle.Render("Answer ✎")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Add card to '%s'", m.addTopic)))
	b.WriteString("\n\n")
	b.WriteString(qTitle)
	b.WriteString("\n")
	b.WriteString(m.question.View())
	b.WriteString("\n\n")
	b.WriteString(aTitle)
	b.WriteString("\n")
	b.WriteString(m.answer.View())
	b.WriteString("\n\n")
	k := m.cfg.Keys
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s switch field · %s save · %s cancel",
		k.SwitchField, k.SaveCard, k.Cancel)))
	return b.String()
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
