package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"groza/models"
)

// WeatherError представляет ошибку получения погоды: сбой сети,
// статус не 200 или неожиданная форма ответа.
type WeatherError struct {
	Provider string
	Status   int // HTTP-статус; 0, если до ответа дело не дошло
	Message  string
	Err      error
}

func (e *WeatherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *WeatherError) Unwrap() error { return e.Err }

type OpenWeatherProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewOpenWeatherProvider(apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
	}
}

func (p *OpenWeatherProvider) Name() string {
	return "OpenWeatherMap"
}

func (p *OpenWeatherProvider) GetWeather(ctx context.Context, city, units string) (*models.WeatherSnapshot, error) {
	// Формируем запрос: units уходит в API как есть
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", units)

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, &WeatherError{Provider: p.Name(), Message: "ошибка создания запроса", Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &WeatherError{Provider: p.Name(), Message: "ошибка HTTP запроса", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, p.statusError(resp)
	}

	// Парсим ответ
	var result struct {
		Name string `json:"name"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Sys struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &WeatherError{Provider: p.Name(), Status: resp.StatusCode, Message: "ошибка парсинга JSON", Err: err}
	}

	if len(result.Weather) == 0 {
		return nil, &WeatherError{Provider: p.Name(), Status: resp.StatusCode, Message: "нет данных о погоде в ответе"}
	}

	snapshot := &models.WeatherSnapshot{
		City:        result.Name,
		Condition:   result.Weather[0].Main,
		Temperature: result.Main.Temp,
		WindSpeed:   result.Wind.Speed,
		Sunrise:     time.Unix(result.Sys.Sunrise, 0).UTC(),
		Sunset:      time.Unix(result.Sys.Sunset, 0).UTC(),
	}

	return snapshot, nil
}

// statusError превращает ответ со статусом не 200 в WeatherError.
func (p *OpenWeatherProvider) statusError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return &WeatherError{
			Provider: p.Name(),
			Status:   resp.StatusCode,
			Message:  "город не найден, проверьте написание на https://openweathermap.org/",
		}
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return &WeatherError{
			Provider: p.Name(),
			Status:   resp.StatusCode,
			Message:  "неверный или отсутствующий API ключ",
		}
	}

	// Остальные статусы: пробуем достать сообщение из тела ответа
	var apiError struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Message != "" {
		return &WeatherError{Provider: p.Name(), Status: resp.StatusCode, Message: apiError.Message}
	}

	return &WeatherError{
		Provider: p.Name(),
		Status:   resp.StatusCode,
		Message:  fmt.Sprintf("ошибка API: статус %d", resp.StatusCode),
	}
}
