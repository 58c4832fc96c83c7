package models

import (
	"github.com/agrisense/agrisense/internal/agronomy"
	"github.com/agrisense/agrisense/internal/weather"
)

// WeatherRequest is the POST body of the weather endpoint.
type WeatherRequest struct {
	Location      string `json:"location"`
	State         string `json:"state,omitempty"`
	Days          int    `json:"days,omitempty"`
	IncludeAlerts bool   `json:"includeAlerts,omitempty"`
	CropType      string `json:"cropType,omitempty"`
}

// WeatherEnvelope is the weather endpoint response. On upstream failure it
// carries success=false, an error note and synthesized data; the payload
// shape is identical either way and Source says which tier produced it.
type WeatherEnvelope struct {
	Success       bool        `json:"success"`
	Error         string      `json:"error,omitempty"`
	Location      string      `json:"location"`
	Coordinates   *LatLon     `json:"coordinates,omitempty"`
	Data          WeatherData `json:"data"`
	LastUpdated   string      `json:"lastUpdated,omitempty"`
	RequestedDays int         `json:"requestedDays,omitempty"`
	CropType      string      `json:"cropType,omitempty"`
	Source        string      `json:"source"`
}

// WeatherData bundles current conditions, the forecast and the derived
// agricultural guidance.
type WeatherData struct {
	Current      CurrentConditions `json:"current"`
	Forecast     []ForecastDay     `json:"forecast"`
	Agricultural Advisory          `json:"agricultural"`
	Alerts       []Alert           `json:"alerts"`
}

// CurrentConditions mirrors weather.CurrentConditions with JSON tags.
type CurrentConditions struct {
	Temperature        int     `json:"temperature"`
	Humidity           int     `json:"humidity"`
	WindSpeed          int     `json:"windSpeed"`
	WindDirection      int     `json:"windDirection"`
	Precipitation      float64 `json:"precipitation"`
	WeatherCode        int     `json:"weatherCode"`
	WeatherDescription string  `json:"weatherDescription"`
	UVIndex            int     `json:"uvIndex"`
	Visibility         int     `json:"visibility"`
	Pressure           int     `json:"pressure"`
}

// ForecastDay mirrors weather.ForecastDay with JSON tags.
type ForecastDay struct {
	Date                     string  `json:"date"`
	MaxTemp                  int     `json:"maxTemp"`
	MinTemp                  int     `json:"minTemp"`
	Humidity                 int     `json:"humidity"`
	Precipitation            float64 `json:"precipitation"`
	PrecipitationProbability int     `json:"precipitationProbability"`
	WindSpeed                int     `json:"windSpeed"`
	WeatherCode              int     `json:"weatherCode"`
	WeatherDescription       string  `json:"weatherDescription"`
	UVIndex                  int     `json:"uvIndex"`
}

// Advisory mirrors agronomy.Advisory with JSON tags.
type Advisory struct {
	SoilMoisture       string `json:"soilMoisture"`
	GrowingConditions  string `json:"growingConditions"`
	IrrigationAdvice   string `json:"irrigationAdvice"`
	PestRisk           string `json:"pestRisk"`
	HarvestSuitability string `json:"harvestSuitability"`
	FieldWorkability   string `json:"fieldWorkability"`
}

// Alert mirrors agronomy.Alert with JSON tags.
type Alert struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	ValidUntil string `json:"validUntil"`
}

// FromCurrentConditions converts the domain model.
func FromCurrentConditions(c weather.CurrentConditions) CurrentConditions {
	return CurrentConditions{
		Temperature:        c.Temperature,
		Humidity:           c.Humidity,
		WindSpeed:          c.WindSpeed,
		WindDirection:      c.WindDirection,
		Precipitation:      c.Precipitation,
		WeatherCode:        c.WeatherCode,
		WeatherDescription: c.WeatherDescription,
		UVIndex:            c.UVIndex,
		Visibility:         c.Visibility,
		Pressure:           c.Pressure,
	}
}

// FromForecast converts the domain forecast.
func FromForecast(forecast []weather.ForecastDay) []ForecastDay {
	out := make([]ForecastDay, len(forecast))
	for i, d := range forecast {
		out[i] = ForecastDay{
			Date:                     d.Date,
			MaxTemp:                  d.MaxTemp,
			MinTemp:                  d.MinTemp,
			Humidity:                 d.Humidity,
			Precipitation:            d.Precipitation,
			PrecipitationProbability: d.PrecipitationProbability,
			WindSpeed:                d.WindSpeed,
			WeatherCode:              d.WeatherCode,
			WeatherDescription:       d.WeatherDescription,
			UVIndex:                  d.UVIndex,
		}
	}
	return out
}

// FromAdvisory converts the domain advisory.
func FromAdvisory(a agronomy.Advisory) Advisory {
	return Advisory{
		SoilMoisture:       a.SoilMoisture,
		GrowingConditions:  a.GrowingConditions,
		IrrigationAdvice:   a.IrrigationAdvice,
		PestRisk:           a.PestRisk,
		HarvestSuitability: a.HarvestSuitability,
		FieldWorkability:   a.FieldWorkability,
	}
}

// FromAlerts converts domain alerts. The result is never nil so the JSON
// field always encodes as an array.
func FromAlerts(alerts []agronomy.Alert) []Alert {
	out := make([]Alert, len(alerts))
	for i, a := range alerts {
		out[i] = Alert{
			Type:       a.Type,
			Severity:   a.Severity,
			Message:    a.Message,
			ValidUntil: a.ValidUntil,
		}
	}
	return out
}
