// Package voice handles the telephony media-stream websocket: µ-law
// audio frames in, synthesized µ-law frames out, with lifecycle events
// {connected, start, media, mark, stop}. Transcription and synthesis
// live behind narrow interfaces; this package owns the protocol, the
// utterance detection, and the call transcript.
package voice

import "encoding/json"

// Media-stream event names.
const (
	eventConnected = "connected"
	eventStart     = "start"
	eventMedia     = "media"
	eventMark      = "mark"
	eventStop      = "stop"
)

// frame is one websocket message on the media stream.
type frame struct {
	Event     string      `json:"event"`
	StreamSID string      `json:"streamSid,omitempty"`
	Start     *startFrame `json:"start,omitempty"`
	Media     *mediaFrame `json:"media,omitempty"`
	Mark      *markFrame  `json:"mark,omitempty"`
}

type startFrame struct {
	StreamSID string `json:"streamSid"`
	CallSID   string `json:"callSid"`
}

type mediaFrame struct {
	Payload string `json:"payload"` // base64 µ-law, 8 kHz mono
}

type markFrame struct {
	Name string `json:"name"`
}

func parseFrame(data []byte) (frame, error) {
	var f frame
	err := json.Unmarshal(data, &f)
	return f, err
}

// mediaEvent builds an outbound audio frame.
func mediaEvent(streamSID, payload string) []byte {
	data, _ := json.Marshal(frame{
		Event:     eventMedia,
		StreamSID: streamSID,
		Media:     &mediaFrame{Payload: payload},
	})
	return data
}

// markEvent builds a playback marker; the peer echoes it back once the
// audio preceding it has been played.
func markEvent(streamSID, name string) []byte {
	data, _ := json.Marshal(frame{
		Event:     eventMark,
		StreamSID: streamSID,
		Mark:      &markFrame{Name: name},
	})
	return data
}
