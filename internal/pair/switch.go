package pair

// switchValue returns the cutoff switching factor s and its radial derivative
// ds/dr at distance d for cutoff rcut. The cubic switch
//
//	s(t) = (1-t)^2*(1+2t),  t = d/rcut
//
// has s(0)=1 and vanishes in value and first derivative at rcut, so
// truncating the pair sum there introduces no energy or force discontinuity.
func switchValue(d, rcut float64) (s, ds float64) {
	t := d / rcut
	if t >= 1 {
		return 0, 0
	}
	s = 1 + t*t*(2*t-3)
	ds = 6 * t * (t - 1) / rcut
	return s, ds
}
