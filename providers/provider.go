package providers

import (
	"context"

	"groza/models"
)

// Provider интерфейс источника данных о погоде
type Provider interface {
	Name() string
	GetWeather(ctx context.Context, city, units string) (*models.WeatherSnapshot, error)
}
