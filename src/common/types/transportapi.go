package types

type PlacesResponse struct {
	Member []PlaceMember `json:"member"`
}

type PlaceMember struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	StationCode string `json:"station_code"`
}

type StationTimetableResponse struct {
	Date        string     `json:"date"`
	TimeOfDay   string     `json:"time_of_day"`
	StationName string     `json:"station_name"`
	StationCode string     `json:"station_code"`
	Departures  Departures `json:"departures"`
}

type Departures struct {
	All []Departure `json:"all"`
}

type Departure struct {
	AimedDepartureTime    *string `json:"aimed_departure_time"`
	AimedArrivalTime      *string `json:"aimed_arrival_time"`
	ExpectedDepartureTime *string `json:"expected_departure_time"`
	ExpectedArrivalTime   *string `json:"expected_arrival_time"`
	Platform              *string `json:"platform"`
	OperatorName          *string `json:"operator_name"`
	Status                *string `json:"status"`
}
