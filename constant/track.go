package constant

// Track geometry, screen space pixels
const (
	// TrackCenterX, TrackCenterY place the ring on an 800x600 virtual canvas
	TrackCenterX = 400.0
	TrackCenterY = 300.0

	// TrackOuterRadius is the asphalt outer edge
	TrackOuterRadius = 240.0

	// TrackInnerRadius is the asphalt inner edge, grass inside
	TrackInnerRadius = 150.0

	// GateTolerance is the half-width of the start/finish band in radians (~7°)
	GateTolerance = 0.12
)

// Item boxes
const (
	// BoxCount is the number of item boxes evenly spaced around the ring
	BoxCount = 8

	// BoxRingOffset moves the box ring outward from the centerline
	BoxRingOffset = 8.0

	// BoxPickupRadius is the kart-to-box distance that grants an item
	BoxPickupRadius = 28.0

	// BoxRespawnSeconds is the cooldown before a collected box reactivates
	BoxRespawnSeconds = 3.0
)
