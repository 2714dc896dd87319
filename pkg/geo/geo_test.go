package geo_test

import (
	"math"
	"testing"

	"github.com/camperplan/camperplan/pkg/geo"
)

var (
	paris     = geo.Point{Lat: 48.8566, Lng: 2.3522}
	lyon      = geo.Point{Lat: 45.764, Lng: 4.8357}
	marseille = geo.Point{Lat: 43.2965, Lng: 5.3698}
)

func TestDistanceKm_KnownPairs(t *testing.T) {
	tests := []struct {
		name    string
		a, b    geo.Point
		wantKm  float64
		within  float64
	}{
		{name: "paris to lyon", a: paris, b: lyon, wantKm: 391, within: 5},
		{name: "lyon to marseille", a: lyon, b: marseille, wantKm: 276, within: 5},
		{name: "amsterdam to rotterdam", a: geo.Point{Lat: 52.3676, Lng: 4.9041}, b: geo.Point{Lat: 51.9225, Lng: 4.47917}, wantKm: 57, within: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.DistanceKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.within {
				t.Errorf("DistanceKm() = %.2f, want %.0f ± %.0f", got, tt.wantKm, tt.within)
			}
		})
	}
}

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	if got := geo.DistanceKm(paris, paris); got != 0 {
		t.Errorf("DistanceKm(p, p) = %f, want 0", got)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := geo.DistanceKm(paris, marseille)
	ba := geo.DistanceKm(marseille, paris)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", ab, ba)
	}
}

func TestDistanceKm_TriangleInequality(t *testing.T) {
	direct := geo.DistanceKm(paris, marseille)
	viaLyon := geo.DistanceKm(paris, lyon) + geo.DistanceKm(lyon, marseille)
	if direct > viaLyon+1e-9 {
		t.Errorf("triangle inequality violated: direct %f > via %f", direct, viaLyon)
	}
}

func TestBearingDegrees(t *testing.T) {
	tests := []struct {
		name   string
		a, b   geo.Point
		want   float64
		within float64
	}{
		{name: "due east along equator", a: geo.Point{Lat: 0, Lng: 0}, b: geo.Point{Lat: 0, Lng: 1}, want: 90, within: 0.01},
		{name: "due north", a: geo.Point{Lat: 0, Lng: 0}, b: geo.Point{Lat: 1, Lng: 0}, want: 0, within: 0.01},
		{name: "paris to marseille roughly south-southeast", a: paris, b: marseille, want: 160, within: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.BearingDegrees(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.within {
				t.Errorf("BearingDegrees() = %.2f, want %.0f ± %.2f", got, tt.want, tt.within)
			}
		})
	}
}

func TestBearingDegrees_Range(t *testing.T) {
	points := []geo.Point{paris, lyon, marseille, {Lat: -33.8688, Lng: 151.2093}}
	for _, a := range points {
		for _, b := range points {
			if a == b {
				continue
			}
			got := geo.BearingDegrees(a, b)
			if got < 0 || got >= 360 {
				t.Errorf("BearingDegrees(%v, %v) = %f, want [0, 360)", a, b, got)
			}
		}
	}
}
