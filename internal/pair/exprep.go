package pair

import "math"

// AmpMix selects the combination rule for the exponential-repulsion
// amplitude.
type AmpMix int

const (
	// AmpMixGeometric: amp = sqrt(amp_i*amp_j).
	AmpMixGeometric AmpMix = iota
	// AmpMixGeometricCorr: the geometric mean corrected in log space,
	// ln(amp) = 0.5*(ln(amp_i)+ln(amp_j))*(1 - c*|ln(amp_i/amp_j)|).
	AmpMixGeometricCorr
)

// BMix selects the combination rule for the exponential-repulsion decay.
type BMix int

const (
	// BMixArithmetic: b = (b_i+b_j)/2.
	BMixArithmetic BMix = iota
	// BMixArithmeticCorr: the arithmetic mean scaled by
	// (1 - c*|ln(amp_i/amp_j)|).
	BMixArithmeticCorr
)

// ExpRep is the pure exponential repulsion
//
//	e = amp*exp(-b*d)
//
// with per-pair amp and b combined across atom types by the configured
// mixing rules. A pair involving a zero amplitude does not interact.
type ExpRep struct {
	Amp         []float64
	AmpMix      AmpMix
	AmpMixCoeff float64
	B           []float64
	BMix        BMix
	BMixCoeff   float64
}

func NewExpRep(amp []float64, ampMix AmpMix, ampMixCoeff float64, b []float64, bMix BMix, bMixCoeff float64) *ExpRep {
	return &ExpRep{
		Amp: amp, AmpMix: ampMix, AmpMixCoeff: ampMixCoeff,
		B: b, BMix: bMix, BMixCoeff: bMixCoeff,
	}
}

func (p *ExpRep) Name() string { return "exprep" }

func (p *ExpRep) Energy(i, j int, d float64) (float64, float64) {
	ampI, ampJ := p.Amp[i], p.Amp[j]
	if ampI == 0 || ampJ == 0 {
		return 0, 0
	}
	lnRatio := math.Abs(math.Log(ampI / ampJ))

	var amp float64
	switch p.AmpMix {
	case AmpMixGeometricCorr:
		lnAmp := 0.5 * (math.Log(ampI) + math.Log(ampJ)) * (1 - p.AmpMixCoeff*lnRatio)
		amp = math.Exp(lnAmp)
	default:
		amp = math.Sqrt(ampI * ampJ)
	}

	b := 0.5 * (p.B[i] + p.B[j])
	if p.BMix == BMixArithmeticCorr {
		b *= 1 - p.BMixCoeff*lnRatio
	}

	e := amp * math.Exp(-b*d)
	return e, -b * e
}

func (p *ExpRep) kernel() {}
