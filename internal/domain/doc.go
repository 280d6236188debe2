// Package domain models recent earthquake events and the current weather at
// their epicentres.
//
// # Seismic Feed
//
// Events come from the USGS FDSN event service
// (https://earthquake.usgs.gov/fdsnws/event/1/query) requested as GeoJSON with
// a fixed limit of 50. Each feature carries:
//
//	id                        stable per source record, unique within a batch
//	properties.mag            magnitude, practically 0–10 (null for some records)
//	properties.place          "10 km SSW of Volcano, Hawaii" (may be null)
//	properties.time           epoch milliseconds
//	properties.url/title/type descriptive metadata
//	geometry.coordinates      [longitude, latitude, depth in km]
//
// Features are returned most-recent-first; that order is upstream's choice
// and is passed through unchanged.
//
// # Weather Feed
//
// Current conditions come from Open-Meteo
// (https://api.open-meteo.com/v1/forecast) with current_weather=true. The
// snapshot carries temperature (°C), wind speed (km/h) and a WMO weather
// interpretation code; see [WeatherCodeLabel].
//
// # Magnitude Filter
//
// The minimum-magnitude threshold spans [MinThreshold, MaxThreshold] in
// steps of [ThresholdStep]. An event passes when its magnitude is greater
// than or equal to the threshold. Display severity buckets are:
//
//	high    magnitude ≥ 5
//	medium  3 ≤ magnitude < 5
//	low     magnitude < 3
package domain
