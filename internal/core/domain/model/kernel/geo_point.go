package kernel

import (
	"errors"
	"fmt"
	"math"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a latitude/longitude pair reported by a delivery partner's device.
//
// Readings are stored as reported. Only non-finite numbers are rejected:
// plausibility of the position (range, jumps between pings) is not checked.
type GeoPoint struct { //nolint:recvcheck
	lat   float64
	long  float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from raw coordinates.
func NewGeoPoint(lat, long float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setLat(lat), p.setLong(long)); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

// Lat returns the latitude.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Long returns the longitude.
func (p GeoPoint) Long() float64 {
	return p.long
}

// IsEqual compares both coordinates exactly.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.long == other.long
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.long)
}

// Validate fails for a zero-value GeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidErrorWithCause("lat", fmt.Errorf("%v is not a finite number", lat))
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLong(long float64) error {
	if math.IsNaN(long) || math.IsInf(long, 0) {
		return errs.NewValueIsInvalidErrorWithCause("long", fmt.Errorf("%v is not a finite number", long))
	}
	p.long = long
	return nil
}
