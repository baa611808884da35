package model

// Hotel represents a hotel document. Hotels have no persistence
// lifecycle through the API; they are read through the search index only.
type Hotel struct {
	Name        string `json:"name" bson:"name"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Country     string `json:"country" bson:"country"`
	City        string `json:"city" bson:"city"`
	State       string `json:"state" bson:"state"`
}

// HotelFilter holds search criteria for hotel filtering. Empty fields
// contribute no clause to the search.
type HotelFilter struct {
	Name        string
	Title       string
	Description string
	Country     string
	City        string
	State       string
}
