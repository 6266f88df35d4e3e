package audio

import (
	"sync"

	game_log "github.com/ingyamilmolinar/hexsum/internal/log"
	"github.com/ingyamilmolinar/hexsum/internal/utils"
)

const (
	sampleRate          = 44100
	bufferSizeBytes10ms = sampleRate / 100 * 2 // 10ms of 16-bit mono audio
)

var (
	once sync.Once
	mix  *mixer

	settingsMu sync.RWMutex
	enabled    = true
	master     = 1.0

	instruments = map[string]Instrument{}
	instOrder   []string
	instMu      sync.RWMutex

	logger *game_log.Logger
)

// Voice generates PCM samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// Instrument constructs a new Voice instance when triggered.
type Instrument interface {
	NewVoice(sampleRate int) Voice
}

// Register makes an instrument available for playback by ID.
func Register(id string, inst Instrument) {
	instMu.Lock()
	if _, exists := instruments[id]; !exists {
		instOrder = append(instOrder, id)
	}
	instruments[id] = inst
	instMu.Unlock()
}

func init() {
	ResetInstruments()
}

// SetLogger routes audio diagnostics to l. A nil logger is silent.
func SetLogger(l *game_log.Logger) { logger = l.With("AUDIO") }

// openOutput connects the mixer to the output device. The device can only be
// opened once per process, so it is called at most once, from Play.
var openOutput = platformStart

func initContext() {
	m := &mixer{}
	if err := openOutput(sampleRate, m); err != nil {
		logger.Warnf("Audio disabled: %v", err)
		return
	}
	logger.Infof("Audio output open at %d Hz", sampleRate)
	mix = m
}

// Configure applies the audio section of the config. Volume is clamped to
// [0,1].
func Configure(on bool, volume float64) {
	settingsMu.Lock()
	enabled = on
	master = utils.Clamp(volume, 0, 1)
	settingsMu.Unlock()
}

// Play starts the cue registered under id at vol (0..1) scaled by the master
// volume. The output device is opened on first use; if that fails, or audio
// is disabled, Play does nothing and returns false.
func Play(id string, vol float64) bool {
	settingsMu.RLock()
	on, gain := enabled, master*utils.Clamp(vol, 0, 1)
	settingsMu.RUnlock()
	if !on || gain == 0 {
		return false
	}
	instMu.RLock()
	inst, ok := instruments[id]
	instMu.RUnlock()
	if !ok {
		return false
	}
	once.Do(initContext)
	if mix == nil {
		return false
	}
	mix.Schedule(&scaledVoice{v: inst.NewVoice(sampleRate), gain: gain})
	return true
}

// ResetInstruments restores the built-in cue set.
func ResetInstruments() {
	instMu.Lock()
	instruments = map[string]Instrument{}
	instOrder = nil
	for _, c := range builtinCues {
		instruments[c.id] = c.inst
		instOrder = append(instOrder, c.id)
	}
	instMu.Unlock()
}

// Instruments returns the list of registered cue IDs.
func Instruments() []string {
	instMu.RLock()
	ids := append([]string(nil), instOrder...)
	instMu.RUnlock()
	return ids
}

type scaledVoice struct {
	v    Voice
	gain float64
}

func (s *scaledVoice) Sample() (float64, bool) {
	f, done := s.v.Sample()
	return f * s.gain, done
}

// mixer mixes multiple voices into a single PCM stream.
type mixer struct {
	mu     sync.Mutex
	voices []Voice
}

// Schedule adds a voice that starts with the next buffer read.
func (m *mixer) Schedule(v Voice) {
	m.mu.Lock()
	m.voices = append(m.voices, v)
	m.mu.Unlock()
}

// Active is the number of voices still playing.
func (m *mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Read implements io.Reader for the output player.
func (m *mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < samples; i++ {
		var sum float64
		for idx := 0; idx < len(m.voices); idx++ {
			val, done := m.voices[idx].Sample()
			sum += val
			if done {
				m.voices = append(m.voices[:idx], m.voices[idx+1:]...)
				idx--
			}
		}
		sum = utils.Clamp(sum, -1, 1)
		v := int16(sum * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}
	return samples * 2, nil
}
