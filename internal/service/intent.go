package service

import (
	"strings"

	"travelbot/internal/model"
)

// IntentParser classifies travel requests with an ordered set of keyword rules.
// It holds no state and is safe for concurrent use.
type IntentParser struct{}

// NewIntentParser creates a new intent parser
func NewIntentParser() *IntentParser {
	return &IntentParser{}
}

// Classify determines the intent of a message, extracts its slots and
// composes a reply. It never fails: unmatched input yields the fallback intent.
func (p *IntentParser) Classify(message string) *model.Classification {
	text := strings.TrimSpace(message)
	u := utterance{text: text, lower: strings.ToLower(text)}

	r := selectRule(u)
	slots := r.resolve(u)
	reply, followUp := composeReply(slots, r.intent)

	return &model.Classification{
		Intent:     r.intent,
		Confidence: r.confidence,
		Slots:      slots,
		Reply:      reply,
		FollowUp:   followUp,
	}
}
