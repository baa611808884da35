package model

// Airline represents an airline document in the store
type Airline struct {
	ID       string `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	IATA     string `json:"iata" bson:"iata"`
	ICAO     string `json:"icao" bson:"icao"`
	Callsign string `json:"callsign" bson:"callsign"`
	Country  string `json:"country" bson:"country"`
}
