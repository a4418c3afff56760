package cutting

// WarningCode identifies an advisory attached to a result. Warnings never
// abort a calculation; the fallback formula for the case has already been
// applied when one is present.
type WarningCode string

const (
	WarnRadialEngagement  WarningCode = "radial_engagement_over_half"
	WarnAxialBeyondRadius WarningCode = "axial_depth_beyond_radius"
	WarnRadiusRatio       WarningCode = "radius_ratio_high"
	WarnRadiusMissing     WarningCode = "radius_missing"
	WarnSpindleCapped     WarningCode = "spindle_capped"
	WarnRampAngleRange    WarningCode = "ramp_angle_range"
	WarnDepthBeyondClass  WarningCode = "depth_beyond_class"
	WarnCornerRadius      WarningCode = "corner_radius_fallback"
)

// Warning is a geometric degeneracy or operating-point advisory.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// HasWarning reports whether ws contains a warning with the given code.
func HasWarning(ws []Warning, code WarningCode) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}
