package engine

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Rescale maps v linearly from [inMin, inMax] to [outMin, outMax],
// clamping to the output range.
func Rescale(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	ratio := (v - inMin) / (inMax - inMin)
	return Clamp(outMin+ratio*(outMax-outMin), outMin, outMax)
}

// Bipolar contrasts two 0-1 scores into a single -1..1 value. Positive
// means b dominates, negative means a dominates. This is the one
// transform every signal mapper uses.
func Bipolar(a, b float64) float64 {
	return Clamp(b-a, -1, 1)
}
