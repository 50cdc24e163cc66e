package constant

// World canvas the race is simulated on, pixels
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0
)

// Terminal layout
const (
	// HUDRows are reserved above the play area, one per kart plus a separator
	HUDRows = 3

	// FooterRows hold the controls hint below the play area
	FooterRows = 1

	// CellAspect is terminal cell height over width, keeps the ring round
	CellAspect = 2.0

	// MinPlayCols, MinPlayRows below which the presenter only prints a resize hint
	MinPlayCols = 40
	MinPlayRows = 12
)
