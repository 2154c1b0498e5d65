package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// Ответ OpenWeatherMap: восход 06:00, закат 18:30 (UTC).
const currentWeatherBody = `{
	"name": "Saint Petersburg",
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky"}],
	"main": {"temp": 21.4, "feels_like": 20.9, "humidity": 40},
	"wind": {"speed": 3.6, "deg": 220},
	"sys": {"sunrise": 1787464800, "sunset": 1787509800}
}`

func newTestProvider(server *httptest.Server) *OpenWeatherProvider {
	p := NewOpenWeatherProvider("test-key")
	p.baseURL = server.URL
	p.client = server.Client()
	return p
}

func TestGetWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Saint Petersburg" || q.Get("appid") != "test-key" || q.Get("units") != "metric" {
			http.Error(w, `{"cod":"400","message":"bad request"}`, http.StatusBadRequest)
			return
		}
		w.Write([]byte(currentWeatherBody))
	}))
	defer server.Close()

	p := newTestProvider(server)

	Convey("Успешный ответ разбирается в снимок погоды", t, func() {
		snapshot, err := p.GetWeather(context.Background(), "Saint Petersburg", "metric")
		So(err, ShouldBeNil)
		So(snapshot.City, ShouldEqual, "Saint Petersburg")
		So(snapshot.Condition, ShouldEqual, "Clear")
		So(snapshot.Temperature, ShouldEqual, 21.4)
		So(snapshot.WindSpeed, ShouldEqual, 3.6)
		So(snapshot.Sunrise.Equal(time.Date(2026, 8, 23, 6, 0, 0, 0, time.UTC)), ShouldBeTrue)
		So(snapshot.Sunset.Equal(time.Date(2026, 8, 23, 18, 30, 0, 0, time.UTC)), ShouldBeTrue)
	})
}

func TestProviderInterface(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(currentWeatherBody))
	}))
	defer server.Close()

	var p Provider = newTestProvider(server)

	Convey("Клиент OpenWeatherMap работает через интерфейс Provider", t, func() {
		So(p.Name(), ShouldEqual, "OpenWeatherMap")

		snapshot, err := p.GetWeather(context.Background(), "Saint Petersburg", "metric")
		So(err, ShouldBeNil)
		So(snapshot.City, ShouldEqual, "Saint Petersburg")
	})
}

func TestGetWeatherNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	p := newTestProvider(server)

	Convey("Статус 404 — WeatherError без снимка", t, func() {
		snapshot, err := p.GetWeather(context.Background(), "Нетакогогорода", "metric")
		So(snapshot, ShouldBeNil)

		var weatherErr *WeatherError
		So(errors.As(err, &weatherErr), ShouldBeTrue)
		So(weatherErr.Status, ShouldEqual, http.StatusNotFound)
		So(weatherErr.Provider, ShouldEqual, "OpenWeatherMap")
		So(weatherErr.Error(), ShouldContainSubstring, "город не найден")
	})
}

func TestGetWeatherUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	p := newTestProvider(server)

	Convey("Статус 401 — WeatherError про API ключ", t, func() {
		_, err := p.GetWeather(context.Background(), "Москва", "metric")

		var weatherErr *WeatherError
		So(errors.As(err, &weatherErr), ShouldBeTrue)
		So(weatherErr.Status, ShouldEqual, http.StatusUnauthorized)
		So(weatherErr.Error(), ShouldContainSubstring, "API ключ")
	})
}

func TestGetWeatherAPIMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":429,"message":"Your account is temporary blocked"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := newTestProvider(server)

	Convey("Для прочих статусов сообщение берётся из тела ответа", t, func() {
		_, err := p.GetWeather(context.Background(), "Москва", "metric")

		var weatherErr *WeatherError
		So(errors.As(err, &weatherErr), ShouldBeTrue)
		So(weatherErr.Status, ShouldEqual, http.StatusTooManyRequests)
		So(weatherErr.Message, ShouldEqual, "Your account is temporary blocked")
	})
}

func TestGetWeatherBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	p := newTestProvider(server)

	Convey("Невалидный JSON при статусе 200 — WeatherError", t, func() {
		snapshot, err := p.GetWeather(context.Background(), "Москва", "metric")
		So(snapshot, ShouldBeNil)

		var weatherErr *WeatherError
		So(errors.As(err, &weatherErr), ShouldBeTrue)
		So(weatherErr.Err, ShouldNotBeNil)
	})
}

func TestGetWeatherEmptyConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Москва", "weather": [], "main": {"temp": 1.0}}`))
	}))
	defer server.Close()

	p := newTestProvider(server)

	Convey("Пустой массив weather — ошибка формы ответа", t, func() {
		snapshot, err := p.GetWeather(context.Background(), "Москва", "metric")
		So(snapshot, ShouldBeNil)

		var weatherErr *WeatherError
		So(errors.As(err, &weatherErr), ShouldBeTrue)
	})
}

func TestGetWeatherNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	p := newTestProvider(server)
	server.Close()

	Convey("Недоступный сервер — WeatherError с причиной", t, func() {
		snapshot, err := p.GetWeather(context.Background(), "Москва", "metric")
		So(snapshot, ShouldBeNil)

		var weatherErr *WeatherError
		So(errors.As(err, &weatherErr), ShouldBeTrue)
		So(weatherErr.Err, ShouldNotBeNil)
		So(weatherErr.Status, ShouldEqual, 0)
	})
}
