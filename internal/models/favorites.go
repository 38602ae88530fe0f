package models

import (
	"math"
	"strings"
)

// FavoriteEntry is a saved city in a session's favorites list.
// Entries are created and removed, never edited.
type FavoriteEntry struct {
	ID          int64          `json:"id"`
	Identifier  CityIdentifier `json:"identifier"`
	Name        string         `json:"name"`
	Country     string         `json:"country"`
	Temp        int            `json:"temp"`
	Condition   string         `json:"condition"`
	LastUpdated string         `json:"lastUpdated"`
}

// FavoritesSummary is the quick overview across all favorites.
type FavoritesSummary struct {
	Count   int `json:"count"`
	AvgTemp int `json:"avgTemp"`
	MaxTemp int `json:"maxTemp"`
	MinTemp int `json:"minTemp"`
}

// RemoveFavorite returns a new list without the entry whose ID is id.
// The order of the remaining entries is preserved and the input is not modified.
func RemoveFavorite(list []FavoriteEntry, id int64) []FavoriteEntry {
	out := make([]FavoriteEntry, 0, len(list))
	for _, f := range list {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

// FilterFavorites keeps entries whose name or country contains query,
// ignoring case. An empty query keeps everything.
func FilterFavorites(list []FavoriteEntry, query string) []FavoriteEntry {
	q := strings.ToLower(query)
	out := make([]FavoriteEntry, 0, len(list))
	for _, f := range list {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.Country), q) {
			out = append(out, f)
		}
	}
	return out
}

func SummarizeFavorites(list []FavoriteEntry) FavoritesSummary {
	if len(list) == 0 {
		return FavoritesSummary{}
	}
	s := FavoritesSummary{
		Count:   len(list),
		MaxTemp: list[0].Temp,
		MinTemp: list[0].Temp,
	}
	sum := 0
	for _, f := range list {
		sum += f.Temp
		s.MaxTemp = max(s.MaxTemp, f.Temp)
		s.MinTemp = min(s.MinTemp, f.Temp)
	}
	s.AvgTemp = int(math.Round(float64(sum) / float64(len(list))))
	return s
}
