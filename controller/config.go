package controller

// Config holds the controller tuning. Body mass and the baseline gravity
// scale come from the Body itself.
type Config struct {
	MoveSpeed   float64
	JumpImpulse float64
	// GravityY is the world gravity along Y. Negative pulls down.
	GravityY float64

	HurtDuration        float64
	HurtSpeedMultiplier float64

	SpringJumpHeightMultiplier float64
	SpringPreventsFallDamage   bool

	SlideMaxFallSpeed  float64
	SlideMinDownSpeed  float64
	SlideGravityScale  float64
	SlideControlFactor float64
	PoleSnapSpeed      float64

	// FacingThreshold is the horizontal speed above which facing flips.
	FacingThreshold float64
	// WindForceEpsilon is the smallest wind force that is applied at all.
	WindForceEpsilon float64
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:                  7,
		JumpImpulse:                10,
		GravityY:                   -9.81,
		HurtDuration:               5,
		HurtSpeedMultiplier:        0.5,
		SpringJumpHeightMultiplier: 2,
		SpringPreventsFallDamage:   true,
		SlideMaxFallSpeed:          6,
		SlideMinDownSpeed:          1.5,
		SlideGravityScale:          0.3,
		SlideControlFactor:         0.05,
		PoleSnapSpeed:              25,
		FacingThreshold:            0.05,
		WindForceEpsilon:           0.001,
	}
}
