// Package score computes word values from a weight table.
package score

import (
	"github.com/verte-zerg/numeracal/internal/model"
	"github.com/verte-zerg/numeracal/internal/weights"
)

// DefaultWeight is assigned to characters missing from the table.
const DefaultWeight = 0

// Engine scores characters and words against a table.
type Engine struct {
	table *weights.Table
}

// New returns an Engine backed by table.
func New(table *weights.Table) *Engine {
	return &Engine{table: table}
}

// Evaluate returns the weight of ch, case-insensitively.
func (e *Engine) Evaluate(ch rune) int {
	if w, ok := e.table.Lookup(ch); ok {
		return w
	}
	return DefaultWeight
}

// ScoreWord scores each character of word in order.
func (e *Engine) ScoreWord(word string) model.WordScore {
	ws := model.WordScore{Word: word}
	for _, ch := range word {
		w := e.Evaluate(ch)
		ws.Letters = append(ws.Letters, model.LetterValue{Letter: ch, Weight: w})
		ws.Total += w
	}
	return ws
}

// ScoreWords builds a fresh session from words.
func (e *Engine) ScoreWords(words []string) model.Session {
	session := model.Session{Scores: make([]model.WordScore, 0, len(words))}
	for _, word := range words {
		session.Add(e.ScoreWord(word))
	}
	return session
}
