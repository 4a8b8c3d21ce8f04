package types

const (
	JourneySingle        = "single"
	JourneyReturn        = "return"
	JourneyNextAvailable = "next_available"
)

type RailQuery struct {
	Origin        string  `json:"origin" validate:"required"`
	Destination   string  `json:"destination" validate:"required"`
	DepartureTime *string `json:"departure_time"`
	ArrivalTime   *string `json:"arrival_time"`
	Date          *string `json:"date"`
	JourneyType   string  `json:"journey_type" validate:"oneof=single return next_available"`
	Passengers    int     `json:"passengers" validate:"min=1"`
	Railcard      *string `json:"railcard"`
}

// ApplyDefaults fills the fields the completion service is allowed to omit.
func (q *RailQuery) ApplyDefaults() {
	if q.JourneyType == "" {
		q.JourneyType = JourneySingle
	}
	if q.Passengers == 0 {
		q.Passengers = 1
	}
}
