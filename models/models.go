package models

import (
	"time"
)

// WeatherSnapshot содержит одно измерение погоды от провайдера.
// Создаётся один раз за запуск и после вывода не используется.
type WeatherSnapshot struct {
	City        string    `json:"city"`
	Condition   string    `json:"condition"` // группа погоды OpenWeatherMap: Clear, Clouds, Rain...
	Temperature float64   `json:"temperature"`
	WindSpeed   float64   `json:"wind_speed"` // в единицах, которые отдал API
	Sunrise     time.Time `json:"sunrise"`    // в UTC
	Sunset      time.Time `json:"sunset"`     // в UTC
}
