package constant

// Race flow
const (
	// LapsToWin is the number of laps a kart must complete
	LapsToWin = 3

	// CountdownStepSeconds is the dwell of each countdown label
	CountdownStepSeconds = 0.9

	// GridOffset separates consecutive karts on the starting grid, in radians
	GridOffset = 0.08

	// BannerSeconds is how long a finish banner stays visible
	BannerSeconds = 1.5
)

// AI driver
const (
	// AIStraightTolerance is the gate offset within which the AI considers itself on the main straight
	AIStraightTolerance = 0.25

	// AIItemChance is the per-tick probability the AI fires a held turbo on the straight
	AIItemChance = 0.02
)
