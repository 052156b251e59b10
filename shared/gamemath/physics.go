package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// DecaySpeed scales speed by factor and snaps it to zero once its magnitude
// drops below threshold, so repeated decay reaches exactly zero.
func DecaySpeed(speed, factor, threshold float64) float64 {
	speed *= factor
	if speed < threshold && speed > -threshold {
		return 0
	}
	return speed
}
