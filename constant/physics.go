package constant

// Kart tuning defaults
const (
	// KartAccel is forward acceleration in px/s²
	KartAccel = 140.0

	// KartMaxSpeed is forward top speed in px/s, reverse is capped at half
	KartMaxSpeed = 260.0

	// KartSteerRate is turn rate in rad/s at top speed
	KartSteerRate = 2.4

	// KartFriction is coasting deceleration on asphalt, per 1/60 s
	KartFriction = 1.7

	// KartOffFriction is coasting deceleration on grass, per 1/60 s
	KartOffFriction = 3.2

	// KartReverseRatio caps reverse speed as a fraction of KartMaxSpeed
	KartReverseRatio = 0.5

	// KartBrakeRatio scales braking relative to acceleration
	KartBrakeRatio = 0.8

	// FrictionFrameRate converts per-frame friction into per-second decay
	FrictionFrameRate = 60.0
)

// Turbo item
const (
	// TurboSeconds is the boost window granted by one turbo item
	TurboSeconds = 1.2

	// TurboAccelRatio is extra acceleration during the window, relative to KartAccel
	TurboAccelRatio = 1.6
)
