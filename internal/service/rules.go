package service

import (
	"regexp"

	"travelbot/internal/model"
)

// Fixed confidence per rule
const (
	ConfidenceGreeting      = 0.95
	ConfidenceThanks        = 0.95
	ConfidenceHelp          = 0.9
	ConfidenceCancelBooking = 0.85
	ConfidenceBookHotel     = 0.8
	ConfidenceSearchFlights = 0.82
	ConfidenceWeather       = 0.78
	ConfidenceFallback      = 0.4
)

var (
	greetingPattern = regexp.MustCompile(`\b(hi|hello|hey|good\s+(morning|afternoon|evening))\b`)
	thanksPattern   = regexp.MustCompile(`\b(thanks|thank you|cheers|appreciate it)\b`)
	helpPattern     = regexp.MustCompile(`\b(help|what can you do|options)\b`)

	cancelPattern      = regexp.MustCompile(`\b(cancel|void)\b`)
	reservationPattern = regexp.MustCompile(`\b(booking|reservation)\b`)

	lodgingPattern     = regexp.MustCompile(`\b(hotel|stay|accommodation)\b`)
	hotelActionPattern = regexp.MustCompile(`\b(book|reserve|find)\b`)

	flightPattern    = regexp.MustCompile(`\b(flight|flights|plane)\b`)
	directionPattern = regexp.MustCompile(`\b(from|to)\b`)
	fromPattern      = regexp.MustCompile(`\bfrom\b`)
	toPattern        = regexp.MustCompile(`\bto\b`)

	weatherPattern = regexp.MustCompile(`\b(weather|forecast)\b`)
)

// utterance holds the views of one message the rules work on
type utterance struct {
	text  string // trimmed, original case
	lower string
}

// rule pairs an intent predicate with its slot resolver
type rule struct {
	intent     model.Intent
	confidence float64
	match      func(u utterance) bool
	resolve    func(u utterance) model.Slots
}

// rules are evaluated in order and the first match wins.
// Conversational acts come first, then multi-keyword task intents from
// narrowest to broadest. The fallback rule always matches.
var rules = []rule{
	{
		intent:     model.IntentGreeting,
		confidence: ConfidenceGreeting,
		match:      matchAny(greetingPattern),
		resolve:    noSlots,
	},
	{
		intent:     model.IntentThanks,
		confidence: ConfidenceThanks,
		match:      matchAny(thanksPattern),
		resolve:    noSlots,
	},
	{
		intent:     model.IntentHelp,
		confidence: ConfidenceHelp,
		match:      matchAny(helpPattern),
		resolve:    noSlots,
	},
	{
		intent:     model.IntentCancelBooking,
		confidence: ConfidenceCancelBooking,
		match:      matchAll(cancelPattern, reservationPattern),
		resolve:    resolveCancelSlots,
	},
	{
		intent:     model.IntentBookHotel,
		confidence: ConfidenceBookHotel,
		match:      matchAll(lodgingPattern, hotelActionPattern),
		resolve:    resolveHotelSlots,
	},
	{
		intent:     model.IntentSearchFlights,
		confidence: ConfidenceSearchFlights,
		match:      matchAll(flightPattern, directionPattern),
		resolve:    resolveFlightSlots,
	},
	{
		intent:     model.IntentWeather,
		confidence: ConfidenceWeather,
		match:      matchAny(weatherPattern),
		resolve:    resolveWeatherSlots,
	},
	{
		intent:     model.IntentFallback,
		confidence: ConfidenceFallback,
		match:      func(utterance) bool { return true },
		resolve:    noSlots,
	},
}

// matchAny matches when any pattern is found in the lowercased text
func matchAny(patterns ...*regexp.Regexp) func(u utterance) bool {
	return func(u utterance) bool {
		for _, p := range patterns {
			if p.MatchString(u.lower) {
				return true
			}
		}
		return false
	}
}

// matchAll matches only when every pattern is found in the lowercased text
func matchAll(patterns ...*regexp.Regexp) func(u utterance) bool {
	return func(u utterance) bool {
		for _, p := range patterns {
			if !p.MatchString(u.lower) {
				return false
			}
		}
		return true
	}
}

// selectRule returns the first rule whose predicate holds
func selectRule(u utterance) rule {
	for _, r := range rules {
		if r.match(u) {
			return r
		}
	}
	return rules[len(rules)-1]
}
