package sos

import "math"

// Cascade chains second-order sections into one steeper band filter. Each
// stage adds 12 dB per octave of roll-off.
type Cascade struct {
	stages   []Filter
	postGain float32
}

// NewCascade builds a cascade from the given args using the section
// constructor for every stage.
//
// Per-stage Q is args.Q scaled by sqrt(1/stages) so the combined pass band
// keeps roughly the requested width; with args.Butterworth set, the stage
// Qs additionally follow Butterworth ratios for a maximally flat top. With
// a stagger scale, stage center frequencies are detuned around CenterHz,
// largest detune first; the final stage always sits on the true center.
func NewCascade(args Args, section SectionFunc) (*Cascade, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}

	if args.Stages < 1 {
		return nil, errStages
	}

	if section == nil {
		return nil, errNilSection
	}

	bqfs, err := ButterworthQFactors(args.Stages * 2)
	if err != nil {
		return nil, err
	}

	var staggers []float64
	if args.StaggerScale != 0 {
		staggers, err = StaggerFactors(args.Stages, args.StaggerScale)
		if err != nil {
			return nil, err
		}
	}

	qNorm := math.Sqrt(1 / float64(args.Stages))
	pop := len(staggers)

	stages := make([]Filter, args.Stages)
	for i := range stages {
		f0 := args.CenterHz
		if pop > 0 {
			pop--
			f0 = args.CenterHz * staggers[pop]
		}

		q := args.Q * qNorm
		if args.Butterworth {
			q = args.Q * bqfs[i] * qNorm
		}

		s, err := section(f0, args.SampleRate, q)
		if err != nil {
			return nil, err
		}

		stages[i] = s
	}

	postGain := args.GainFactor
	if postGain == 0 {
		postGain = 1
	}

	return &Cascade{
		stages:   stages,
		postGain: float32(postGain),
	}, nil
}

// Process filters one sample through every stage.
func (c *Cascade) Process(x float32) float32 {
	out := x
	for _, stage := range c.stages {
		out = stage.Process(out)
	}

	return out * c.postGain
}

// Reset clears every stage.
func (c *Cascade) Reset() {
	for _, stage := range c.stages {
		stage.Reset()
	}
}

// Stages returns the cascade depth.
func (c *Cascade) Stages() int {
	return len(c.stages)
}

// ButterworthQFactors returns the per-section Q ratios of a Butterworth
// filter of the given even order, ordered from the least to the most
// resonant section.
func ButterworthQFactors(order int) ([]float64, error) {
	if order <= 0 || order%2 != 0 {
		return nil, errOrder
	}

	sections := order / 2

	out := make([]float64, 0, sections)
	for k := sections - 1; k >= 0; k-- {
		theta := (2*float64(k) + 1) * math.Pi / (2 * float64(order))
		out = append(out, 1/(2*math.Sin(theta)))
	}

	return out, nil
}

// StaggerFactors returns multiplicative detune factors for the first
// stages-1 sections of a cascade. The scale is the total amount of
// frequency twiddling spread across the sections, distributed by
// Butterworth weights and alternating above and below unity; factors begin
// large and shrink toward the end. One stage needs no staggering and
// yields an empty slice.
func StaggerFactors(stages int, scale float64) ([]float64, error) {
	if stages < 1 {
		return nil, errStages
	}

	if scale <= 0 {
		return nil, errStagger
	}

	if stages == 1 {
		return []float64{}, nil
	}

	logScale := math.Log2(scale)

	butters, err := ButterworthQFactors((stages - 1) * 2)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, b := range butters {
		sum += b
	}

	butterNorm := 1 / sum
	even := len(butters)%2 == 0

	factors := make([]float64, stages-1)
	for i := range factors {
		b := butters[i] * butterNorm
		if (i%2 == 0) == even {
			factors[i] = math.Exp2(-b * logScale)
		} else {
			factors[i] = math.Exp2(b * logScale)
		}
	}

	for i, j := 0, len(factors)-1; i < j; i, j = i+1, j-1 {
		factors[i], factors[j] = factors[j], factors[i]
	}

	return factors, nil
}
