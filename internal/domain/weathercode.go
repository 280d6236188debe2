package domain

import "strconv"

// weatherCodeLabels maps WMO weather interpretation codes to display labels.
// See https://open-meteo.com/en/docs for the code list.
var weatherCodeLabels = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight showers",
	81: "Moderate showers",
	82: "Violent showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm w/ hail",
	99: "Thunderstorm w/ heavy hail",
}

// WeatherCodeLabel returns the condition label for a WMO weather code, or
// "Code {n}" when the code is not in the table.
func WeatherCodeLabel(code int) string {
	if label, ok := weatherCodeLabels[code]; ok {
		return label
	}
	return "Code " + strconv.Itoa(code)
}
