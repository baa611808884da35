package model

// Geo holds the coordinates of an airport
type Geo struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
	Alt float64 `json:"alt" bson:"alt"`
}

// Airport represents an airport document in the store
type Airport struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty"`
	AirportName string `json:"airportname" bson:"airportname"`
	City        string `json:"city" bson:"city"`
	Country     string `json:"country" bson:"country"`
	FAA         string `json:"faa" bson:"faa"`
	ICAO        string `json:"icao" bson:"icao"`
	TZ          string `json:"tz" bson:"tz"`
	Geo         Geo    `json:"geo" bson:"geo"`
}
