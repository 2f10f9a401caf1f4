package audio

import (
	"github.com/gopxl/beep"
	"github.com/lixenwraith/arcade-siege/constants"
)

// ambienceSteps is the looping arpeggio in Hz
var ambienceSteps = []float64{150, 200, 250, 200}

// AmbienceGenerator streams the background triangle arpeggio forever
type AmbienceGenerator struct {
	rate     beep.SampleRate
	gain     float64
	stepLen  int
	position int
	phase    float64
}

// NewAmbienceGenerator creates the background loop at the given gain
func NewAmbienceGenerator(rate beep.SampleRate, gain float64) *AmbienceGenerator {
	return &AmbienceGenerator{
		rate:    rate,
		gain:    gain,
		stepLen: rate.N(constants.AmbienceStepDuration),
	}
}

func (g *AmbienceGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := (g.position / g.stepLen) % len(ambienceSteps)
		freq := ambienceSteps[step]

		val := g.gain * waveSample(WaveTriangle, g.phase)
		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.rate)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}
		g.position++
	}
	return len(samples), true
}

func (g *AmbienceGenerator) Err() error {
	return nil
}
