package domain

// Brazilian macro-regions.
const (
	RegionNorth       = "North"
	RegionNortheast   = "Northeast"
	RegionCentralWest = "Central-West"
	RegionSoutheast   = "Southeast"
	RegionSouth       = "South"
	RegionUnknown     = "Unknown"
)

// stateRegions maps all 27 federative-unit codes to their macro-region.
var stateRegions = map[string]string{
	// North
	"AC": RegionNorth,
	"AP": RegionNorth,
	"AM": RegionNorth,
	"PA": RegionNorth,
	"RO": RegionNorth,
	"RR": RegionNorth,
	"TO": RegionNorth,
	// Northeast
	"AL": RegionNortheast,
	"BA": RegionNortheast,
	"CE": RegionNortheast,
	"MA": RegionNortheast,
	"PB": RegionNortheast,
	"PE": RegionNortheast,
	"PI": RegionNortheast,
	"RN": RegionNortheast,
	"SE": RegionNortheast,
	// Central-West
	"DF": RegionCentralWest,
	"GO": RegionCentralWest,
	"MT": RegionCentralWest,
	"MS": RegionCentralWest,
	// Southeast
	"ES": RegionSoutheast,
	"MG": RegionSoutheast,
	"RJ": RegionSoutheast,
	"SP": RegionSoutheast,
	// South
	"PR": RegionSouth,
	"RS": RegionSouth,
	"SC": RegionSouth,
}

// RegionForState resolves a state code to its macro-region, RegionUnknown
// for codes outside the federative-unit table.
func RegionForState(code string) string {
	if region, ok := stateRegions[code]; ok {
		return region
	}
	return RegionUnknown
}

// StateCodes returns all 27 federative-unit codes, unordered.
func StateCodes() []string {
	codes := make([]string, 0, len(stateRegions))
	for code := range stateRegions {
		codes = append(codes, code)
	}
	return codes
}

// Regions returns the five macro-regions in the conventional order.
func Regions() []string {
	return []string{RegionNorth, RegionNortheast, RegionCentralWest, RegionSoutheast, RegionSouth}
}
