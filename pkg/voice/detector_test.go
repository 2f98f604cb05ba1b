package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// µ-law 0xFF decodes to 0 (silence); 0x00 decodes to the loudest
// negative sample.
func silentFrame() []byte {
	frame := make([]byte, 160)
	for i := range frame {
		frame[i] = 0xFF
	}
	return frame
}

func loudFrame() []byte {
	frame := make([]byte, 160)
	for i := range frame {
		frame[i] = 0x00
	}
	return frame
}

func TestUlawToLinear(t *testing.T) {
	assert.EqualValues(t, 0, ulawToLinear(0xFF))
	assert.Less(t, ulawToLinear(0x00), int16(-8000))
	assert.Greater(t, ulawToLinear(0x80), int16(8000))
}

func TestFrameEnergy(t *testing.T) {
	assert.Less(t, frameEnergy(silentFrame()), energyThreshold)
	assert.Greater(t, frameEnergy(loudFrame()), energyThreshold)
	assert.Zero(t, frameEnergy(nil))
}

func TestUtteranceDetector_SpeechThenSilence(t *testing.T) {
	var d utteranceDetector

	// Leading silence buffers nothing.
	for i := 0; i < 5; i++ {
		assert.Nil(t, d.Feed(silentFrame()))
	}

	for i := 0; i < minSpeechFrames+5; i++ {
		assert.Nil(t, d.Feed(loudFrame()))
	}

	var utterance []byte
	for i := 0; i < endSilenceFrames; i++ {
		utterance = d.Feed(silentFrame())
		if i < endSilenceFrames-1 {
			require.Nil(t, utterance)
		}
	}
	require.NotNil(t, utterance)
	// Speech plus trailing silence, no leading silence.
	assert.Len(t, utterance, (minSpeechFrames+5+endSilenceFrames)*160)

	// Detector reset: more silence yields nothing.
	assert.Nil(t, d.Feed(silentFrame()))
}

func TestUtteranceDetector_ClickIgnored(t *testing.T) {
	var d utteranceDetector

	// Fewer speech frames than the minimum is treated as a click.
	for i := 0; i < minSpeechFrames-1; i++ {
		require.Nil(t, d.Feed(loudFrame()))
	}
	for i := 0; i < endSilenceFrames; i++ {
		assert.Nil(t, d.Feed(silentFrame()))
	}
}

func TestUtteranceDetector_Flush(t *testing.T) {
	var d utteranceDetector
	for i := 0; i < minSpeechFrames; i++ {
		d.Feed(loudFrame())
	}
	assert.NotNil(t, d.Flush())
	assert.Nil(t, d.Flush())
}
