package push

import "fmt"

// WeatherReport is the structured result of a weather lookup.
type WeatherReport struct {
	City        string
	Date        string
	Temperature string
	Weather     string
	Wind        string
}

// ComposeWeatherContent concatenates the structured weather summary block with
// the generated advisory text. The layout is fixed; the frontend renders the
// block verbatim.
func ComposeWeatherContent(report WeatherReport, advice string) string {
	return fmt.Sprintf("[Today's Weather]\n%s %s %s\n%s\n\n%s",
		report.City, report.Weather, report.Temperature, report.Wind, advice)
}
