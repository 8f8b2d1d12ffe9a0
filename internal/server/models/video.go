package models

// Video represents both movies and TV shows in the catalog.
// Category is "movies" or "tvShows".
type Video struct {
	ID          string
	Title       string
	Genre       string
	Category    string
	Year        int
	Description string
	Phrase      string
	CardImage   string
	LargePoster string
	RentPrice   float64
	BuyPrice    float64
	Featured    bool
}
