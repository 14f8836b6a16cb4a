package keplerian

// Earth constants used throughout the propagation. Values from Vallado,
// 4th edition (WGS-84 / EGM-96).
const (
	// EarthGM is the standard gravitational parameter µ of the Earth in m³/s².
	EarthGM = 3.986004418e14
	// EarthRadius is the equatorial radius of the Earth in meters.
	EarthRadius = 6378137.0
	// EarthRotationRate is the average Earth rotation rate in radians per second.
	EarthRotationRate = 7.2921158553e-5
	// J2000 is the Julian date of the J2000.0 reference epoch.
	J2000 = 2451545.0
)
