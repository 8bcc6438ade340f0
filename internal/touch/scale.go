package touch

// FixedResolution is the assumed raw axis range when the driver supplies no
// calibration: 12-bit controller coordinates.
const FixedResolution = 4096

// Scale linearly rescales a raw axis value from [rawMin, rawMax] into
// [0, extent) using integer arithmetic. A degenerate range (rawMax ==
// rawMin) yields 0 rather than dividing by zero.
func Scale(raw, rawMin, rawMax int32, extent int) int {
	den := int64(rawMax) - int64(rawMin)
	if den == 0 {
		return 0
	}
	return int((int64(raw) - int64(rawMin)) * int64(extent) / den)
}

// ScaleFixed rescales a raw axis value assuming the fixed 12-bit resolution.
// This is the degraded path for devices whose axis bounds could not be
// probed; prefer Scale with calibrated bounds.
func ScaleFixed(raw int32, extent int) int {
	return int(int64(raw) * int64(extent) / FixedResolution)
}
