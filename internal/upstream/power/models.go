package power

import "github.com/climasphere/climasphere/internal/reading"

// ComfortDaily is the climatology variable set for the comfort index.
type ComfortDaily struct {
	TMax   reading.Value // daily max temperature, degrees C
	TMin   reading.Value // daily min temperature, degrees C
	RH     reading.Value // relative humidity, percent
	Precip reading.Value // corrected precipitation, mm/day
}

// FireDaily is the variable set for the bushfire ladder.
type FireDaily struct {
	Temp     reading.Value // 2 m temperature, degrees C
	Humidity reading.Value // relative humidity, percent
	Wind     reading.Value // 10 m wind speed, m/s
	Precip   reading.Value // precipitation, mm/day
}

// CycloneDaily is the variable set for the cyclone heuristic.
type CycloneDaily struct {
	TMax     reading.Value // daily max temperature, degrees C
	RH       reading.Value // relative humidity, percent
	Precip   reading.Value // corrected precipitation, mm/day
	Wind10M  reading.Value // 10 m wind speed, m/s
	Wind2M   reading.Value // 2 m wind speed, m/s
	Pressure reading.Value // surface pressure, hPa
}
