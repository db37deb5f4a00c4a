// Package audio plays the looped background track. Everything here is
// best-effort: a missing or undecodable asset is logged and the run
// continues without music.
package audio

import (
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"
)

// speakerBufferLen is the speaker buffer duration; short enough that the
// loop restart is not audible as a gap.
const speakerBufferLen = time.Second / 10

// PlayLoop starts the background track at path, looping forever. Playback
// runs on the speaker's own goroutine and never touches simulation state.
// All failures are logged at warn and swallowed.
func PlayLoop(path string, logger *zap.Logger) {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("background track unavailable", zap.String("path", path), zap.Error(err))
		return
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		logger.Warn("background track decode failed", zap.String("path", path), zap.Error(err))
		return
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(speakerBufferLen)); err != nil {
		streamer.Close()
		logger.Warn("speaker init failed", zap.Error(err))
		return
	}

	speaker.Play(beep.Loop(-1, streamer))
	logger.Debug("background track playing", zap.String("path", path))
}

// Stop silences playback. Safe to call even if PlayLoop never succeeded.
func Stop() {
	speaker.Clear()
}
