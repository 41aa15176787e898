package service

import (
	"fmt"
	"strings"

	"travelbot/internal/model"
)

// Fixed replies
const (
	ReplyGreeting = "Hi! Where would you like to travel? I can search flights and hotels, or check the weather."
	ReplyThanks   = "You're welcome! Anything else I can help with?"
	ReplyHelp     = "I can: 1) find flights, 2) book hotels, 3) check weather, 4) cancel bookings if you have an ID."
	ReplyFallback = "I'm not sure I understood. Try asking me to find flights, book a hotel, check weather, or cancel a booking."

	ReplyCancelAskID      = "I can help cancel that. What's the booking ID?"
	ReplyHotelAskAll      = "Sure, what city and dates are you looking at?"
	ReplyFlightsAskAll    = "Sure — what's your origin, destination, and date?"
	ReplyWeatherAskAll    = "I can get the forecast. Which city and date?"
	FollowUpMissingDetail = "Please provide missing details if any."
)

// composeReply picks the reply template for the resolved slots
func composeReply(slots model.Slots, intent model.Intent) (string, *string) {
	switch s := slots.(type) {
	case model.HotelSlots:
		followUp := FollowUpMissingDetail
		return hotelReply(s), &followUp
	case model.FlightSlots:
		return flightReply(s), nil
	case model.WeatherSlots:
		return weatherReply(s), nil
	case model.CancelSlots:
		if s.BookingID == nil {
			return ReplyCancelAskID, nil
		}
		return fmt.Sprintf("Okay, I can cancel booking %s. Do you want me to proceed?", *s.BookingID), nil
	}

	switch intent {
	case model.IntentGreeting:
		return ReplyGreeting, nil
	case model.IntentThanks:
		return ReplyThanks, nil
	case model.IntentHelp:
		return ReplyHelp, nil
	default:
		return ReplyFallback, nil
	}
}

func hotelReply(s model.HotelSlots) string {
	switch {
	case s.Location != nil && s.CheckIn != nil && s.CheckOut != nil:
		return fmt.Sprintf("Got it. Searching hotels in %s from %s to %s...", DisplayCity(*s.Location), *s.CheckIn, *s.CheckOut)
	case s.Location != nil && s.CheckIn != nil:
		return fmt.Sprintf("Great. What's your check-out date for %s after %s?", DisplayCity(*s.Location), *s.CheckIn)
	case s.Location != nil:
		return fmt.Sprintf("Great. What dates would you like in %s?", DisplayCity(*s.Location))
	default:
		return ReplyHotelAskAll
	}
}

func flightReply(s model.FlightSlots) string {
	var parts []string
	if s.From != nil {
		parts = append(parts, "from "+DisplayCity(*s.From))
	}
	if s.To != nil {
		parts = append(parts, "to "+DisplayCity(*s.To))
	}
	if s.Date != nil {
		parts = append(parts, "on "+*s.Date)
	}
	if len(parts) == 0 {
		return ReplyFlightsAskAll
	}
	return "Got it. " + strings.Join(parts, " ") + "..."
}

func weatherReply(s model.WeatherSlots) string {
	if s.Location == nil || s.Date == nil {
		return ReplyWeatherAskAll
	}
	return fmt.Sprintf("Forecast for %s on %s: 23°C, partly cloudy (sample).", DisplayCity(*s.Location), *s.Date)
}
