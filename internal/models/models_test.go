package models

import (
	"errors"
	"testing"
)

func testFavorites() []FavoriteEntry {
	return []FavoriteEntry{
		{ID: 1, Name: "New York", Country: "US", Temp: 22},
		{ID: 2, Name: "London", Country: "UK", Temp: 18},
		{ID: 3, Name: "Tokyo", Country: "JP", Temp: 25},
		{ID: 4, Name: "Sydney", Country: "AU", Temp: 20},
	}
}

func TestRemoveFavorite(t *testing.T) {
	list := testFavorites()
	got := RemoveFavorite(list, 2)

	if len(got) != len(list)-1 {
		t.Fatalf("len = %d, want %d", len(got), len(list)-1)
	}
	wantIDs := []int64{1, 3, 4}
	for i, f := range got {
		if f.ID == 2 {
			t.Error("removed entry still present")
		}
		if f.ID != wantIDs[i] {
			t.Errorf("got[%d].ID = %d, want %d", i, f.ID, wantIDs[i])
		}
	}
	if len(list) != 4 || list[1].ID != 2 {
		t.Error("input list was modified")
	}
}

func TestRemoveFavorite_UnknownID(t *testing.T) {
	list := testFavorites()
	got := RemoveFavorite(list, 99)
	if len(got) != len(list) {
		t.Fatalf("len = %d, want %d", len(got), len(list))
	}
}

func TestFilterFavorites(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 4},
		{"lon", 1},
		{"LON", 1},
		{"jp", 1},
		{"u", 3}, // US, UK, AU
		{"zzz", 0},
	}
	for _, tt := range tests {
		if got := FilterFavorites(testFavorites(), tt.query); len(got) != tt.want {
			t.Errorf("FilterFavorites(%q) = %d entries, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestSummarizeFavorites(t *testing.T) {
	s := SummarizeFavorites(testFavorites())
	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	// (22+18+25+20)/4 = 21.25
	if s.AvgTemp != 21 {
		t.Errorf("AvgTemp = %d, want 21", s.AvgTemp)
	}
	if s.MaxTemp != 25 || s.MinTemp != 18 {
		t.Errorf("Max/Min = %d/%d, want 25/18", s.MaxTemp, s.MinTemp)
	}

	if empty := SummarizeFavorites(nil); empty.Count != 0 {
		t.Errorf("empty Count = %d, want 0", empty.Count)
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}

	s := DefaultSettings()
	s.WindUnit = "furlongs"
	err := s.Validate()
	if !errors.Is(err, ErrInvalidSetting) {
		t.Fatalf("err = %v, want ErrInvalidSetting", err)
	}

	s = DefaultSettings()
	s.TemperatureUnit = TempKelvin
	s.TimeFormat = TimeFormat12h
	if err := s.Validate(); err != nil {
		t.Errorf("valid settings rejected: %v", err)
	}
}
