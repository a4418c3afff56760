package cutting

// Result is the outcome of one calculation. Speeds are in rpm, cutting
// speeds in m/min, feeds in mm and feed rates in mm/min.
type Result struct {
	EffectiveDiameter float64 `json:"effective_diameter_mm"`

	SpindleSpeedRaw float64 `json:"spindle_speed_raw_rpm"`
	RPMFactor       float64 `json:"rpm_factor"`
	SpindleSpeed    float64 `json:"spindle_speed_rpm"`
	Capped          bool    `json:"capped"`
	RequestedVc     float64 `json:"requested_vc_m_min"`
	ActualVc        float64 `json:"actual_vc_m_min"`

	Teeth         int          `json:"teeth"`
	BaseFeed      float64      `json:"base_feed_mm"`
	CorrectedFeed float64      `json:"corrected_feed_mm"`
	Adjustments   []Adjustment `json:"adjustments,omitempty"`
	FeedRate      int          `json:"feed_rate_mm_min"`

	ProductionFeed     float64 `json:"production_feed_mm,omitempty"`
	ProductionFeedRate int     `json:"production_feed_rate_mm_min,omitempty"`

	RecommendedEngagement string    `json:"recommended_engagement,omitempty"`
	Warnings              []Warning `json:"warnings"`
}

// Factor returns the factor recorded for the named adjustment, or 1 when the
// adjustment was not part of the chain.
func (r Result) Factor(name string) float64 {
	for _, a := range r.Adjustments {
		if a.Name == name {
			return a.Factor
		}
	}
	return 1.0
}
