package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// dateLayouts approximates each locale's short date-time convention. The
// first entry is the fallback when nothing matches.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Spanish, "2/1/2006, 15:04:05"},
	{language.Italian, "2/1/2006, 15:04:05"},
	{language.Dutch, "2-1-2006, 15:04:05"},
	{language.Portuguese, "02/01/2006, 15:04:05"},
	{language.Swedish, "2006-01-02 15:04:05"},
	{language.Japanese, "2006/1/2 15:04:05"},
	{language.Chinese, "2006/1/2 15:04:05"},
	{language.Korean, "2006. 1. 2. 15:04:05"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, d := range dateLayouts {
		tags[i] = d.tag
	}
	return language.NewMatcher(tags)
}()

// Formatter renders event and weather values using the viewer's locale and
// time zone.
type Formatter struct {
	tag    language.Tag
	layout string
	loc    *time.Location
}

// NewFormatter matches the preferred locales (BCP 47 tags or Accept-Language
// header values, most preferred first) against the supported date layouts.
// A nil loc means time.Local.
func NewFormatter(loc *time.Location, preferred ...string) Formatter {
	var tags []language.Tag
	for _, p := range preferred {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	_, index, _ := localeMatcher.Match(tags...)
	if loc == nil {
		loc = time.Local
	}
	return Formatter{
		tag:    dateLayouts[index].tag,
		layout: dateLayouts[index].layout,
		loc:    loc,
	}
}

// Locale returns the matched locale tag.
func (f Formatter) Locale() language.Tag {
	return f.tag
}

// Time renders an epoch-millisecond timestamp in local conventions.
func (f Formatter) Time(millis int64) string {
	return time.UnixMilli(millis).In(f.location()).Format(f.layout)
}

// Stamp renders a time.Time in local conventions.
func (f Formatter) Stamp(t time.Time) string {
	return t.In(f.location()).Format(f.layout)
}

func (f Formatter) location() *time.Location {
	if f.loc == nil {
		return time.Local
	}
	return f.loc
}

// Magnitude renders a magnitude or threshold with one decimal.
func (f Formatter) Magnitude(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Depth renders a depth in kilometres with one decimal.
func (f Formatter) Depth(km float64) string {
	return strconv.FormatFloat(km, 'f', 1, 64) + " km"
}

// Coordinates renders latitude then longitude with two decimals each.
func (f Formatter) Coordinates(lat, lon float64) string {
	return fmt.Sprintf("%.2f°, %.2f°", lat, lon)
}

// Temperature renders the value as returned by the feed, without rounding.
func (f Formatter) Temperature(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64) + "°C"
}

// WindSpeed renders the value as returned by the feed, without rounding.
func (f Formatter) WindSpeed(kmh float64) string {
	return strconv.FormatFloat(kmh, 'f', -1, 64) + " km/h"
}
