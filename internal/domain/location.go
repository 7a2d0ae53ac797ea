package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Границы координат: нижняя включительно, верхняя исключительно.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Location — координата, которую отправитель публикует в топик. На проводе это строка "<lat>,<lon>".
type Location struct {
	Latitude  float64
	Longitude float64
}

// NewRandomLocation строит случайную координату. rnd должен возвращать равномерное число из [0, 1),
// широта и долгота берутся независимыми вызовами.
func NewRandomLocation(rnd func() float64) Location {
	return Location{
		Latitude:  uniform(rnd(), MinLatitude, MaxLatitude),
		Longitude: uniform(rnd(), MinLongitude, MaxLongitude),
	}
}

// uniform отображает f из [0, 1) в [lo, hi). Округление float64 может дать ровно hi, такое значение уводим на lo.
func uniform(f, lo, hi float64) float64 {
	v := lo + f*(hi-lo)
	if v >= hi || v < lo {
		return lo
	}
	return v
}

// String возвращает представление для брокера: "<lat>,<lon>" в кратчайшей точной десятичной форме.
func (l Location) String() string {
	return formatCoord(l.Latitude) + "," + formatCoord(l.Longitude)
}

// Valid проверяет, что обе координаты в допустимых диапазонах.
func (l Location) Valid() bool {
	return l.Latitude >= MinLatitude && l.Latitude < MaxLatitude &&
		l.Longitude >= MinLongitude && l.Longitude < MaxLongitude
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseLocation разбирает строку "<lat>,<lon>". Ошибка всегда оборачивает ErrMalformedLocation.
func ParseLocation(s string) (Location, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(lon, ",") {
		return Location{}, fmt.Errorf("%w: want \"<lat>,<lon>\", got %q", ErrMalformedLocation, s)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: latitude: %v", ErrMalformedLocation, err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: longitude: %v", ErrMalformedLocation, err)
	}

	loc := Location{Latitude: latitude, Longitude: longitude}
	if !loc.Valid() {
		return Location{}, fmt.Errorf("%w: out of range %q", ErrMalformedLocation, s)
	}
	return loc, nil
}
