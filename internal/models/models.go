package models

// CityIdentifier is the lowercase, hyphen-delimited token that names a city
// in URLs, e.g. "new-york".
type CityIdentifier string

type CurrentConditions struct {
	Temp       int    `json:"temp"`
	Condition  string `json:"condition"`
	Humidity   int    `json:"humidity"`
	WindSpeed  int    `json:"windSpeed"`  // km/h
	Visibility int    `json:"visibility"` // km
	Pressure   int    `json:"pressure"`   // hPa
	UVIndex    int    `json:"uvIndex"`
	FeelsLike  int    `json:"feelsLike"`
}

type HourlyPoint struct {
	Time      string `json:"time"` // "HH:00"
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

type DailyPoint struct {
	Day           string `json:"day"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	Icon          string `json:"icon"`
	Precipitation int    `json:"precipitation"` // percent
}

// Report is the full synthesized weather for one city.
type Report struct {
	City       string            `json:"city"`
	Country    string            `json:"country"`
	Identifier CityIdentifier    `json:"identifier"`
	Current    CurrentConditions `json:"current"`
	Hourly     []HourlyPoint     `json:"hourly"`
	Daily      []DailyPoint      `json:"daily"`
}

type ChartPoint struct {
	Time        string `json:"time"`
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
}

type WeeklyPoint struct {
	Day           string `json:"day"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Precipitation int    `json:"precipitation"`
}

type Chart struct {
	City       string         `json:"city"`
	Identifier CityIdentifier `json:"identifier"`
	Hourly     []ChartPoint   `json:"hourly"`
	Weekly     []WeeklyPoint  `json:"weekly"`
}

type MapOverview struct {
	City          string         `json:"city"`
	Identifier    CityIdentifier `json:"identifier"`
	Layers        []string       `json:"layers"`
	CloudCover    int            `json:"cloudCover"` // percent
	StormActivity string         `json:"stormActivity"`
	Precipitation string         `json:"precipitation"`
	Intensity     float64        `json:"intensity"` // mm/h
	Movement      string         `json:"movement"`
}

// PopularCity is a catalog entry shown on the home page.
type PopularCity struct {
	Name      string `json:"name" yaml:"name"`
	Country   string `json:"country" yaml:"country"`
	Temp      int    `json:"temp" yaml:"temp"`
	Condition string `json:"condition" yaml:"condition"`
}
