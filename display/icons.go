package display

// ASCII-иконки погоды. Каждая — семь строк одинаковой ширины, справа
// к ним приклеиваются строки с данными.
var (
	iconClear = []string{
		`             `,
		`   \   /     `,
		`    .-.      `,
		` ‒ (   ) ‒   `,
		`    ʻ-ʻ      `,
		`   /   \     `,
		`             `,
	}

	iconClouds = []string{
		`               `,
		`     .--.      `,
		`  .-(    ).    `,
		` (___.__)__)   `,
		`               `,
		`               `,
		`               `,
	}

	iconRain = []string{
		`               `,
		`     .--.      `,
		`  .-(    ).    `,
		` (___.__)__)   `,
		`  ʻ‚ʻ‚ʻ‚ʻ‚ʻ    `,
		`               `,
		`               `,
	}

	iconSnow = []string{
		`               `,
		`     .--.      `,
		`  .-(    ).    `,
		` (___.__)__)   `,
		`   * * * *     `,
		`  * * * *      `,
		`               `,
	}

	iconThunderstorm = []string{
		`               `,
		`     .--.      `,
		`  .-(    ).    `,
		` (___.__)__)   `,
		`    /_  /_     `,
		`     /  /      `,
		`               `,
	}
)

// iconFor подбирает иконку по группе погоды; для незнакомых групп —
// просто облако.
func iconFor(condition string) []string {
	switch condition {
	case "Clear":
		return iconClear
	case "Clouds":
		return iconClouds
	case "Rain":
		return iconRain
	case "Snow":
		return iconSnow
	case "Thunderstorm":
		return iconThunderstorm
	default:
		return iconClouds
	}
}
