package game

import "math"

// PCM layout of generated sound effects.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// SoundKind identifies a race sound effect.
type SoundKind int

const (
	SoundStart SoundKind = iota
	SoundStageChange
	SoundHalt
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < 2; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// GenerateSound returns interleaved stereo float32 PCM for kind, or nil
// for an unknown kind.
func GenerateSound(kind SoundKind) []byte {
	switch kind {
	case SoundStart:
		return genStart()
	case SoundStageChange:
		return genStageChange()
	case SoundHalt:
		return genHalt()
	}
	return nil
}

// genStart: short rising blip.
func genStart() []byte {
	n := SampleRate * 120 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.2, 0.2)
		freq := 600 + 500*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.0, 0.8)*env*0.4))
	}
	return buf
}

// genStageChange: ascending bell arpeggio, each note ringing over the next.
func genStageChange() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.3*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.6, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 3.5, 5.0*env) * env * 0.25
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHalt: low falling tone.
func genHalt() []byte {
	n := int(0.5 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.3, 0.3, 0.4)
		freq := 260 * (1 - 0.3*p)
		putStereoF32(buf, i, softSat(fm(t, freq, 2.0, 2.0*env)*env*0.35))
	}
	return buf
}
