package model

// Intent is one of the closed set of user goals an utterance can map to
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentSearchFlights Intent = "search_flights"
	IntentBookHotel     Intent = "book_hotel"
	IntentCancelBooking Intent = "cancel_booking"
	IntentWeather       Intent = "weather"
	IntentThanks        Intent = "thanks"
	IntentHelp          Intent = "help"
	IntentFallback      Intent = "fallback"
)

// AllIntents lists every intent in matching priority order
var AllIntents = []Intent{
	IntentGreeting,
	IntentThanks,
	IntentHelp,
	IntentCancelBooking,
	IntentBookHotel,
	IntentSearchFlights,
	IntentWeather,
	IntentFallback,
}

// Slots is the set of parameters extracted for one intent.
// Each intent has exactly one concrete slot type, so the keys a response
// carries are fixed by the type rather than filled in by convention.
type Slots interface {
	// Map renders the slots as the wire mapping (nil values become JSON null)
	Map() map[string]any
	isSlots()
}

// NoSlots is used by intents without parameters
type NoSlots struct{}

// HotelSlots always renders all three keys
type HotelSlots struct {
	Location *string
	CheckIn  *string
	CheckOut *string
}

// FlightSlots always renders from, to and date
type FlightSlots struct {
	From *string
	To   *string
	Date *string
}

// WeatherSlots always renders location and date
type WeatherSlots struct {
	Location *string
	Date     *string
}

// CancelSlots renders booking_id only when one was found
type CancelSlots struct {
	BookingID *string
}

func (NoSlots) isSlots() {}
func (HotelSlots) isSlots() {}
func (FlightSlots) isSlots() {}
func (WeatherSlots) isSlots() {}
func (CancelSlots) isSlots() {}

func (NoSlots) Map() map[string]any {
	return map[string]any{}
}

func (s HotelSlots) Map() map[string]any {
	return map[string]any{
		"location":  nullable(s.Location),
		"check_in":  nullable(s.CheckIn),
		"check_out": nullable(s.CheckOut),
	}
}

func (s FlightSlots) Map() map[string]any {
	return map[string]any{
		"from": nullable(s.From),
		"to":   nullable(s.To),
		"date": nullable(s.Date),
	}
}

func (s WeatherSlots) Map() map[string]any {
	return map[string]any{
		"location": nullable(s.Location),
		"date":     nullable(s.Date),
	}
}

func (s CancelSlots) Map() map[string]any {
	if s.BookingID == nil {
		return map[string]any{}
	}
	return map[string]any{"booking_id": *s.BookingID}
}

func nullable(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

// Classification is the result of classifying a single utterance
type Classification struct {
	Intent     Intent
	Confidence float64 // fixed per rule, informational only
	Slots      Slots
	Reply      string
	FollowUp   *string
}

// IntentDef describes an intent for discovery
type IntentDef struct {
	Name             string   `json:"name" yaml:"name"`
	Description      string   `json:"description" yaml:"description"`
	SampleUtterances []string `json:"sample_utterances" yaml:"sample_utterances"`
	RequiredSlots    []string `json:"required_slots" yaml:"required_slots"`
}
