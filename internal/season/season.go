// Package season supplies seasonal driving factors and advice for trip
// planning. It carries no control flow of its own: the planner consumes
// the multipliers, and the advice strings are attached to stages and
// plans as-is.
package season

// Season represents a travel season.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Valid reports whether s is a known season.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}

// DrivingConditions rates expected road conditions for a season.
// Higher rank is better.
type DrivingConditions string

const (
	ConditionsPoor      DrivingConditions = "POOR"
	ConditionsFair      DrivingConditions = "FAIR"
	ConditionsGood      DrivingConditions = "GOOD"
	ConditionsExcellent DrivingConditions = "EXCELLENT"
)

// Rank returns the ordering of driving conditions, from 0 (poor)
// to 3 (excellent).
func (c DrivingConditions) Rank() int {
	switch c {
	case ConditionsPoor:
		return 0
	case ConditionsFair:
		return 1
	case ConditionsGood:
		return 2
	case ConditionsExcellent:
		return 3
	}
	return -1
}

// Band describes a qualitative low/moderate/high classification.
type Band string

const (
	BandLow      Band = "LOW"
	BandModerate Band = "MODERATE"
	BandHigh     Band = "HIGH"
)

// SeasonalFactors describes the planning-relevant characteristics of a
// season for a set of destination countries.
type SeasonalFactors struct {
	Season               Season
	TemperatureBand      Band
	PrecipitationBand    Band
	CampsiteAvailability Band
	DrivingConditions    DrivingConditions

	// DistanceMultiplier scales the maximum daily driving distance.
	// Summer is the unmodified baseline (1.0).
	DistanceMultiplier float64

	// SpeedMultiplier scales the average driving speed.
	SpeedMultiplier float64

	Recommendations []string
	Warnings        []string
}

// Factors returns the seasonal factors for a season and destination
// countries. Unknown seasons fall back to summer, so the result is
// always usable. Winter driving conditions are strictly worse than
// summer for the same region set.
func Factors(s Season, countries []string) SeasonalFactors {
	alpine := containsAlpine(countries)

	switch s {
	case SeasonWinter:
		f := SeasonalFactors{
			Season:               SeasonWinter,
			TemperatureBand:      BandLow,
			PrecipitationBand:    BandHigh,
			CampsiteAvailability: BandLow,
			DrivingConditions:    ConditionsFair,
			DistanceMultiplier:   0.75,
			SpeedMultiplier:      0.85,
			Recommendations: []string{
				"Plan shorter driving days to account for reduced daylight",
				"Check that campsites along the route are open in winter",
				"Carry snow chains and check winter tyre requirements",
			},
			Warnings: []string{
				"Many campsites close between November and March",
			},
		}
		if alpine {
			f.DrivingConditions = ConditionsPoor
			f.DistanceMultiplier = 0.65
			f.Warnings = append(f.Warnings,
				"Mountain passes may be closed; verify access roads before departure")
		}
		return f

	case SeasonSpring:
		return SeasonalFactors{
			Season:               SeasonSpring,
			TemperatureBand:      BandModerate,
			PrecipitationBand:    BandModerate,
			CampsiteAvailability: BandModerate,
			DrivingConditions:    ConditionsGood,
			DistanceMultiplier:   0.95,
			SpeedMultiplier:      0.95,
			Recommendations: []string{
				"Book popular coastal campsites ahead of the Easter period",
			},
		}

	case SeasonAutumn:
		return SeasonalFactors{
			Season:               SeasonAutumn,
			TemperatureBand:      BandModerate,
			PrecipitationBand:    BandModerate,
			CampsiteAvailability: BandModerate,
			DrivingConditions:    ConditionsGood,
			DistanceMultiplier:   0.9,
			SpeedMultiplier:      0.95,
			Recommendations: []string{
				"Expect earlier sunsets; plan arrivals before dark",
				"Check campsite closing dates, many close mid-October",
			},
		}

	default:
		return SeasonalFactors{
			Season:               SeasonSummer,
			TemperatureBand:      BandHigh,
			PrecipitationBand:    BandLow,
			CampsiteAvailability: BandHigh,
			DrivingConditions:    ConditionsExcellent,
			DistanceMultiplier:   1.0,
			SpeedMultiplier:      1.0,
			Recommendations: []string{
				"Reserve campsites in advance during the July-August peak",
				"Start driving early to avoid afternoon heat and traffic",
			},
		}
	}
}

// alpineCountries lists countries where winter mountain driving
// meaningfully degrades conditions.
var alpineCountries = map[string]bool{
	"AT": true, "CH": true, "NO": true, "SE": true, "FI": true,
	"austria": true, "switzerland": true, "norway": true,
	"sweden": true, "finland": true,
}

func containsAlpine(countries []string) bool {
	for _, c := range countries {
		if alpineCountries[c] {
			return true
		}
	}
	return false
}
