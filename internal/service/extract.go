package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Known cities. "new york" is listed before "nyc" and matched as a phrase.
var cityPattern = regexp.MustCompile(`(?i)\b(paris|tokyo|rome|london|new york|nyc|madrid|berlin|sydney|dubai)\b`)

// cityAliases maps abbreviations to the name shown in replies
var cityAliases = map[string]string{
	"nyc": "new york",
}

var bookingIDPattern = regexp.MustCompile(`\b([A-Z0-9]{5,8})\b`)

// Structural dates: 2024-07-01, 7/1, 7/1/24, 7/1/2024, Jul 1, July 1
var datePattern = regexp.MustCompile(
	`(?i)\b(?:\d{4}-\d{1,2}-\d{1,2}|\d{1,2}/\d{1,2}(?:/\d{2,4})?|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2})\b`,
)

// Relative date phrases, checked in this order
var dateWords = []string{
	"today",
	"tomorrow",
	"tonight",
	"next monday",
	"next tuesday",
	"next wednesday",
	"next thursday",
	"next friday",
	"next saturday",
	"next sunday",
}

// ExtractCities returns every known city in text, lowercased, in order of appearance
func ExtractCities(text string) []string {
	matches := cityPattern.FindAllString(text, -1)
	cities := make([]string, 0, len(matches))
	for _, m := range matches {
		cities = append(cities, strings.ToLower(m))
	}
	return cities
}

// DisplayCity returns the title-cased name of an extracted city
func DisplayCity(city string) string {
	if canonical, ok := cityAliases[city]; ok {
		city = canonical
	}
	// A Caser is stateful, so one is built per call
	return cases.Title(language.English).String(city)
}

// ExtractDate returns the first structural date in text, or failing that
// the first relative date phrase. Returns nil when neither is present.
func ExtractDate(text string) *string {
	if m := datePattern.FindString(text); m != "" {
		return &m
	}
	lower := strings.ToLower(text)
	for _, w := range dateWords {
		if strings.Contains(lower, w) {
			word := w
			return &word
		}
	}
	return nil
}

// ExtractStructuralDates returns all structural dates in text, left to right.
// Relative phrases are not included.
func ExtractStructuralDates(text string) []string {
	return datePattern.FindAllString(text, -1)
}

// ExtractBookingID returns the first 5-8 character uppercase/digit token
func ExtractBookingID(text string) *string {
	m := bookingIDPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	return &m[1]
}
