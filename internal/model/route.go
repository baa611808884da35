package model

// ScheduleEntry is one scheduled flight on a route
type ScheduleEntry struct {
	Day    int    `json:"day" bson:"day"`
	UTC    string `json:"utc" bson:"utc"`
	Flight string `json:"flight" bson:"flight"`
}

// Route represents a route document connecting two airports
type Route struct {
	ID                 string          `json:"id,omitempty" bson:"_id,omitempty"`
	Airline            string          `json:"airline" bson:"airline"`
	AirlineID          string          `json:"airlineid" bson:"airlineid"`
	SourceAirport      string          `json:"sourceairport" bson:"sourceairport"`
	DestinationAirport string          `json:"destinationairport" bson:"destinationairport"`
	Stops              int             `json:"stops" bson:"stops"`
	Equipment          string          `json:"equipment" bson:"equipment"`
	Distance           float64         `json:"distance" bson:"distance"`
	Schedule           []ScheduleEntry `json:"schedule" bson:"schedule"`
}
