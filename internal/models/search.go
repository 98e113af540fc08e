package models

// SearchItem is one search hit. NumUpcomingShows counts every show of the
// entity; shows are not filtered by date.
type SearchItem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type SearchResult struct {
	Count int          `json:"count"`
	Data  []SearchItem `json:"data"`
}
