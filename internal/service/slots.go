package service

import (
	"travelbot/internal/model"
)

func noSlots(utterance) model.Slots {
	return model.NoSlots{}
}

func resolveCancelSlots(u utterance) model.Slots {
	return model.CancelSlots{BookingID: ExtractBookingID(u.text)}
}

// resolveHotelSlots takes the first city as the location. Two structural
// dates give check-in and check-out; otherwise the single date extractor
// supplies check-in only.
func resolveHotelSlots(u utterance) model.Slots {
	slots := model.HotelSlots{
		Location: firstCity(u.text),
		CheckIn:  ExtractDate(u.text),
	}
	if dates := ExtractStructuralDates(u.text); len(dates) >= 2 {
		slots.CheckIn = &dates[0]
		slots.CheckOut = &dates[1]
	}
	return slots
}

// resolveFlightSlots assigns two cities as origin and destination. A single
// city goes to "from" when that word is present, else to "to". Both are
// whole-word checks, so "fromage" does not count as "from".
func resolveFlightSlots(u utterance) model.Slots {
	slots := model.FlightSlots{Date: ExtractDate(u.text)}

	cities := ExtractCities(u.text)
	switch {
	case len(cities) >= 2:
		slots.From = &cities[0]
		slots.To = &cities[1]
	case len(cities) == 1:
		if fromPattern.MatchString(u.lower) {
			slots.From = &cities[0]
		} else if toPattern.MatchString(u.lower) {
			slots.To = &cities[0]
		}
	}
	return slots
}

func resolveWeatherSlots(u utterance) model.Slots {
	return model.WeatherSlots{
		Location: firstCity(u.text),
		Date:     ExtractDate(u.text),
	}
}

func firstCity(text string) *string {
	cities := ExtractCities(text)
	if len(cities) == 0 {
		return nil
	}
	return &cities[0]
}
