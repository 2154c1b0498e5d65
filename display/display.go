package display

import (
	"strings"
	"time"

	"github.com/fatih/color"

	"groza/config"
	"groza/models"
)

// palette хранит цвета строк вывода. Цвета включаются и выключаются
// явно по use_colors, чтобы вывод не зависел от того, терминал это
// или пайп.
type palette struct {
	city      *color.Color
	condition *color.Color
	temp      *color.Color
	wind      *color.Color
	sunrise   *color.Color
	sunset    *color.Color
	date      *color.Color
}

func newPalette(condition string, enabled bool) *palette {
	p := &palette{
		city:      color.New(color.FgGreen, color.Bold),
		condition: conditionColor(condition),
		temp:      color.New(color.FgRed),
		wind:      color.New(color.FgCyan),
		sunrise:   color.New(color.FgYellow),
		sunset:    color.New(color.FgBlue),
		date:      dateColor(condition),
	}

	for _, c := range []*color.Color{p.city, p.condition, p.temp, p.wind, p.sunrise, p.sunset, p.date} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// conditionColor — цвет строки «Погода: ...», свой у каждой группы.
func conditionColor(condition string) *color.Color {
	switch condition {
	case "Clear":
		return color.New(color.FgYellow, color.Bold)
	case "Clouds":
		return color.New(color.FgMagenta, color.Bold)
	case "Rain":
		return color.New(color.FgBlue, color.Bold)
	case "Snow":
		return color.New(color.FgMagenta, color.Bold)
	case "Thunderstorm":
		return color.New(color.FgBlack, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func dateColor(condition string) *color.Color {
	if condition == "Clouds" {
		return color.New(color.FgCyan)
	}
	return color.New(color.FgWhite)
}

// caption — подпись группы погоды; незнакомые группы печатаются как есть.
func caption(condition string) string {
	switch condition {
	case "Clear":
		return "ясно"
	case "Clouds":
		return "облачно"
	case "Rain":
		return "дождь"
	case "Snow":
		return "снег"
	case "Thunderstorm":
		return "гроза"
	default:
		return condition
	}
}

// unitLabels возвращает подписи температуры и ветра для выбранных единиц.
// Всё, кроме metric и imperial, OpenWeatherMap отдаёт в кельвинах.
func unitLabels(units string) (temp, wind string) {
	switch units {
	case "metric":
		return "°C", "м/с"
	case "imperial":
		return "°F", "миль/ч"
	default:
		return "K", "м/с"
	}
}

// adjustTime сдвигает время на заданные в конфигурации часы; переход
// через полночь получается сам собой.
func adjustTime(t time.Time, cfg *config.Config) time.Time {
	return t.Add(time.Duration(cfg.TimePlus)*time.Hour - time.Duration(cfg.TimeMinus)*time.Hour)
}

// formatClock выводит время в 12- или 24-часовом виде.
func formatClock(t time.Time, timeFormat string) string {
	if timeFormat == "12" {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}

// Render собирает итоговый текст: иконка слева, семь строк данных справа.
// Чистое форматирование без ошибок; now нужен только для строки с датой.
func Render(snapshot *models.WeatherSnapshot, cfg *config.Config, now time.Time) string {
	pal := newPalette(snapshot.Condition, cfg.UseColors)
	tempUnit, windUnit := unitLabels(cfg.Units)

	sunrise := formatClock(adjustTime(snapshot.Sunrise, cfg), cfg.TimeFormat)
	sunset := formatClock(adjustTime(snapshot.Sunset, cfg), cfg.TimeFormat)

	info := make([]string, 7)
	if cfg.ShowCityName {
		info[0] = pal.city.Sprintf("Город: %s", snapshot.City)
	}
	info[1] = pal.condition.Sprintf("Погода: %s", caption(snapshot.Condition))
	info[2] = pal.temp.Sprintf("Температура: %.1f%s", snapshot.Temperature, tempUnit)
	info[3] = pal.wind.Sprintf("Скорость ветра: %.1f %s", snapshot.WindSpeed, windUnit)
	info[4] = pal.sunrise.Sprintf("Восход: %s", sunrise)
	info[5] = pal.sunset.Sprintf("Закат: %s", sunset)
	if cfg.ShowDate {
		info[6] = pal.date.Sprintf("Дата: %s", now.Format("02.01.2006"))
	}

	icon := iconFor(snapshot.Condition)
	lines := make([]string, len(icon))
	for i := range icon {
		lines[i] = icon[i] + info[i]
	}

	return strings.Join(lines, "\n")
}
