package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AutoplayResult:
		o.printAutoplayResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Score        uint64 `json:"score"`
	AttemptsLeft uint64 `json:"attempts_left"`
	Clue         string `json:"clue,omitempty"`
}

// BotAction is one guess made during autoplay
type BotAction struct {
	Type  string `json:"type"`
	Guess uint64 `json:"guess"`
	Clue  string `json:"clue,omitempty"`
}

// AutoplayResult response type
type AutoplayResult struct {
	Actions []BotAction `json:"actions"`
	Player  *Player     `json:"player"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.w, "Player: %s (%d)\n", p.Name, p.ID)
	_, _ = fmt.Fprintf(o.w, "Score: %d\n", p.Score)
	_, _ = fmt.Fprintf(o.w, "Attempts left: %d\n", p.AttemptsLeft)
	if p.Clue != "" {
		_, _ = fmt.Fprintf(o.w, "Clue: %s\n", p.Clue)
	}
}

func (o *Output) printAutoplayResult(a AutoplayResult) {
	for i, action := range a.Actions {
		_, _ = fmt.Fprintf(o.w, "%d. guessed %d: %s\n", i+1, action.Guess, action.Type)
	}
	if a.Player != nil {
		o.printPlayer(*a.Player)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
