package voice

// Telephony media arrives as 20 ms µ-law frames, silence included, so
// utterance boundaries have to come from signal energy rather than frame
// gaps.

const (
	// energyThreshold separates speech from line noise, in linear PCM
	// mean absolute amplitude.
	energyThreshold = 500

	// endSilenceFrames of sub-threshold audio close an utterance (~800 ms).
	endSilenceFrames = 40

	// minSpeechFrames guards against clicks registering as utterances (~200 ms).
	minSpeechFrames = 10
)

// ulawToLinear decodes one G.711 µ-law sample to 16-bit linear PCM.
func ulawToLinear(u byte) int16 {
	u = ^u
	t := (int16(u&0x0F) << 3) + 0x84
	t <<= (u & 0x70) >> 4
	if u&0x80 != 0 {
		return 0x84 - t
	}
	return t - 0x84
}

// frameEnergy is the mean absolute amplitude of a µ-law frame.
func frameEnergy(ulaw []byte) int {
	if len(ulaw) == 0 {
		return 0
	}
	var sum int64
	for _, b := range ulaw {
		s := int64(ulawToLinear(b))
		if s < 0 {
			s = -s
		}
		sum += s
	}
	return int(sum / int64(len(ulaw)))
}

// utteranceDetector accumulates µ-law frames and cuts an utterance when
// speech has been followed by sustained silence.
type utteranceDetector struct {
	buf          []byte
	speechFrames int
	silentFrames int
}

// Feed adds one frame. When an utterance completes, it is returned and
// the detector resets; otherwise nil.
func (d *utteranceDetector) Feed(ulaw []byte) []byte {
	speaking := frameEnergy(ulaw) >= energyThreshold

	if speaking {
		d.speechFrames++
		d.silentFrames = 0
		d.buf = append(d.buf, ulaw...)
		return nil
	}

	if d.speechFrames == 0 {
		// Leading silence: nothing buffered yet.
		return nil
	}

	d.silentFrames++
	d.buf = append(d.buf, ulaw...)
	if d.silentFrames < endSilenceFrames {
		return nil
	}

	utterance := d.buf
	spoke := d.speechFrames >= minSpeechFrames
	d.buf = nil
	d.speechFrames = 0
	d.silentFrames = 0

	if !spoke {
		return nil
	}
	return utterance
}

// Flush returns whatever speech is buffered, for end-of-call handling.
func (d *utteranceDetector) Flush() []byte {
	if d.speechFrames < minSpeechFrames {
		return nil
	}
	utterance := d.buf
	d.buf = nil
	d.speechFrames = 0
	d.silentFrames = 0
	return utterance
}
