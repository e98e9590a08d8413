package checklist

// DefaultRegistry returns the built-in Dubai Building Code 2021 permit
// checklist. It is used when no checklist file is configured.
//
// The detection patterns accept both millimetre and metre spellings of each
// dimension (e.g. "900", "1.0", "1000" for a 900mm door clearance) because
// extracted plan text is inconsistent about units.
func DefaultRegistry() *Registry {
	rules := []Rule{
		{Code: "E6", Criterion: "door width ≥ 900mm", Detector: MustRegexDetector(`door.*(900|1\.0|1000)`)},
		{Code: "LCR2", Criterion: "ramp slope ≤ 8%", Detector: MustRegexDetector(`ramp.*(1[:/]\s*12|8\s*%)`)},
		{Code: "PE1", Criterion: "path width ≥ 1800mm", Detector: MustRegexDetector(`path.*(1800|1\.8)`)},
		{Code: "SPpt", Criterion: "accessible toilet available", Detector: MustRegexDetector(`toilet|wc|accessible`)},
		{Code: "PA1", Criterion: "parking within 50m", Detector: MustRegexDetector(`parking.*(50|fifty)`)},
		{Code: "GD3", Criterion: "handrail height ≥ 900mm", Detector: MustRegexDetector(`handrail.*(900|1\.0|1000)`)},
		{Code: "GS", Criterion: "stair width ≥ 1200mm", Detector: MustRegexDetector(`stair.*(1200|1\.2)`)},
		{Code: "PE7", Criterion: "no abrupt level changes", Detector: MustRegexDetector(`level.*change`)},
		{Code: "SPsh", Criterion: "shower turning radius ≥1500mm", Detector: MustRegexDetector(`shower.*(1500|1\.5)`)},
		{Code: "LCH1", Criterion: "guardrail height ≥1100mm", Detector: MustRegexDetector(`guardrail.*(1100|1\.1)`)},
	}

	reg, err := NewRegistry(rules)
	if err != nil {
		// The built-in rules are constants; a construction failure here is
		// a programming error.
		panic(err)
	}

	return reg
}
