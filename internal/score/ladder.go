package score

import "github.com/climasphere/climasphere/internal/reading"

// Climate-index thresholds shared by the ladders: ONI at +-0.5 marks
// El Nino / La Nina, IOD at +-0.4 marks a positive / negative dipole.
const (
	oniElNino = 0.5
	oniLaNina = -0.5
	iodPos    = 0.4
	iodNeg    = -0.4
)

// Bushfire computes the bushfire threshold-ladder score. Each absent factor
// simply contributes nothing; the index multipliers still apply.
func Bushfire(temp, humidity, wind, dryness, oni, iod reading.Value) (float64, Tier) {
	s := 10.0

	if t, ok := temp.Float(); ok {
		switch {
		case t >= 40:
			s += 40
		case t >= 35:
			s += 30
		case t >= 30:
			s += 20
		case t >= 25:
			s += 10
		}
	}
	if h, ok := humidity.Float(); ok {
		// Inverted ladder: drier air scores higher.
		switch {
		case h <= 20:
			s += 40
		case h <= 30:
			s += 30
		case h <= 40:
			s += 20
		case h <= 50:
			s += 10
		}
	}
	if w, ok := wind.Float(); ok {
		switch {
		case w >= 30:
			s += 30
		case w >= 20:
			s += 20
		case w >= 10:
			s += 10
		}
	}
	if d, ok := dryness.Float(); ok {
		switch {
		case d >= 80:
			s += 40
		case d >= 60:
			s += 30
		case d >= 40:
			s += 20
		}
	}

	if v, ok := oni.Float(); ok {
		if v >= oniElNino {
			s *= 1.2
		} else if v <= oniLaNina {
			s *= 0.8
		}
	}
	if v, ok := iod.Float(); ok {
		if v > iodPos {
			s *= 1.1
		} else if v < iodNeg {
			s *= 0.9
		}
	}

	s = Clamp(s, 0, 100)
	return s, TierFor(s, 30, 60)
}

// Flood computes the flood threshold-ladder probability. The gridded rainfall
// product takes precedence over the climatology rainfall; a present official
// warning overrides the whole ladder with a fixed 95.
func Flood(rainGPM, rainPower, soil, river, oni, iod reading.Value, bomWarning bool) (float64, Tier) {
	p := 10.0

	if r, ok := rainGPM.Float(); ok {
		switch {
		case r > 150:
			p += 40
		case r > 100:
			p += 30
		case r > 50:
			p += 20
		case r > 20:
			p += 10
		}
	} else if r, ok := rainPower.Float(); ok {
		switch {
		case r > 100:
			p += 30
		case r > 50:
			p += 20
		case r > 20:
			p += 10
		}
	}
	if s, ok := soil.Float(); ok {
		switch {
		case s >= 90:
			p += 30
		case s >= 80:
			p += 20
		case s >= 70:
			p += 10
		}
	}
	if r, ok := river.Float(); ok {
		switch {
		case r >= 90:
			p += 40
		case r >= 80:
			p += 25
		case r >= 70:
			p += 15
		}
	}

	if v, ok := oni.Float(); ok {
		if v <= oniLaNina {
			p *= 1.3
		} else if v >= oniElNino {
			p *= 0.7
		}
	}
	if v, ok := iod.Float(); ok {
		if v < iodNeg {
			p *= 1.2
		} else if v > iodPos {
			p *= 0.8
		}
	}

	if bomWarning {
		p = 95.0
	}
	p = Clamp(p, 0, 100)
	return p, TierFor(p, 30, 60)
}

// BushfireSeasonal is the index-only seasonal outlook: El Nino and a positive
// IOD push the baseline up, their opposites pull it down.
func BushfireSeasonal(oni, iod reading.Value) (float64, Tier) {
	base := 20.0
	if v, ok := oni.Float(); ok {
		if v >= oniElNino {
			base += 15
		} else if v <= oniLaNina {
			base -= 5
		}
	}
	if v, ok := iod.Float(); ok {
		if v > iodPos {
			base += 10
		} else if v < iodNeg {
			base -= 10
		}
	}
	base = Clamp(base, 0, 100)
	return base, TierFor(base, 30, 60)
}

// FloodSeasonal is the index-only seasonal outlook for flood: La Nina and a
// negative IOD raise the baseline.
func FloodSeasonal(oni, iod reading.Value) (float64, Tier) {
	p := 20.0
	if v, ok := oni.Float(); ok {
		if v <= oniLaNina {
			p += 30
		} else if v >= oniElNino {
			p -= 30
		}
	}
	if v, ok := iod.Float(); ok {
		if v <= iodNeg {
			p += 20
		} else if v >= iodPos {
			p -= 20
		}
	}
	p = Clamp(p, 0, 100)
	return p, TierFor(p, 30, 60)
}

// CycloneSeasonal is the index-only seasonal outlook for cyclone formation.
// Note the Medium threshold sits at 35, not 30; the per-hazard thresholds are
// deliberately not unified.
func CycloneSeasonal(oni, iod reading.Value) (float64, Tier) {
	base := 20.0
	if v, ok := oni.Float(); ok {
		if v <= oniLaNina {
			base += 30
		} else if v >= oniElNino {
			base -= 20
		}
	}
	if v, ok := iod.Float(); ok {
		if v <= iodNeg {
			base += 20
		} else if v >= iodPos {
			base -= 15
		}
	}
	base = Clamp(base, 0, 100)
	return base, TierFor(base, 35, 60)
}
