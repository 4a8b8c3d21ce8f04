package types

type ResolvedStation struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Resolved reports whether the lookup service produced a usable station code.
func (s ResolvedStation) Resolved() bool {
	return s.Code != ""
}

type NormalizedDateTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type ServiceEntry struct {
	DepartureTime     *string `json:"departure_time,omitempty"`
	ArrivalTime       *string `json:"arrival_time,omitempty"`
	ExpectedDeparture *string `json:"expected_departure,omitempty"`
	ExpectedArrival   *string `json:"expected_arrival,omitempty"`
	Platform          string  `json:"platform"`
	Operator          string  `json:"operator"`
	Status            string  `json:"status"`
}

type QueryInfo struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginCode      string `json:"origin_code"`
	DestinationCode string `json:"destination_code"`
	SearchDate      string `json:"search_date"`
	SearchTime      string `json:"search_time"`
}

type TimetableResult struct {
	QueryInfo QueryInfo      `json:"query_info"`
	Services  []ServiceEntry `json:"services"`
}
