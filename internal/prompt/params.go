// Package prompt builds chat-completion requests from the sidebar parameters
// and performs the single outbound call to the aggregation API.
package prompt

import (
	"fmt"
	"strings"
)

// Params is the full set of generation options selected in the sidebar.
// Every knob is enumerated explicitly; there is no open-ended key lookup.
// A fresh value is built on every submit and never persisted.
type Params struct {
	Task         string
	Mode         string
	Style        string
	Persona      string
	Depth        string
	Format       string
	Languages    []string
	Tone         string
	Domain       string
	Creativity   float64
	BiasFilter   string
	SpeedQuality string
	Memory       string

	// ModelOverride, when non-empty, replaces the identifier resolved from
	// the logical model tag.
	ModelOverride string
}

// DefaultParams returns the documented defaults: the first option of each
// selector, no languages, creativity 0.5.
func DefaultParams() Params {
	return Params{
		Task:         "Explain",
		Mode:         "Stepwise",
		Style:        "Formal",
		Persona:      "Student",
		Depth:        "Short",
		Format:       "Text",
		Tone:         "Neutral",
		Domain:       "Science",
		Creativity:   0.5,
		BiasFilter:   "Neutral",
		SpeedQuality: "Instant",
		Memory:       "Stateless",
	}
}

// SystemPrompt serializes the parameters as "Key=Value" pairs joined by
// " | ". The key order is fixed: Task, Tone, Mode, Style, Persona, Depth,
// Format, Language, Bias, Speed, Memory. A missing value renders as an empty
// string after the '='; the key always appears. Domain and Creativity are
// collected for the sidebar but are not part of the system prompt.
func (p Params) SystemPrompt() string {
	pairs := []string{
		"Task=" + p.Task,
		"Tone=" + p.Tone,
		"Mode=" + p.Mode,
		"Style=" + p.Style,
		"Persona=" + p.Persona,
		"Depth=" + p.Depth,
		"Format=" + p.Format,
		"Language=" + strings.Join(p.Languages, ", "),
		"Bias=" + p.BiasFilter,
		"Speed=" + p.SpeedQuality,
		"Memory=" + p.Memory,
	}
	return strings.Join(pairs, " | ")
}

func (p Params) String() string {
	return fmt.Sprintf("Params(%s)", p.SystemPrompt())
}
