package domain

import "encoding/json"

// Ad is the payload pushed to every channel on each tick. Fields are optional;
// an empty string means the field is absent.
type Ad struct {
	Text     string `json:"text,omitempty"`
	PhotoRef string `json:"photoRef,omitempty"`
	VideoRef string `json:"videoRef,omitempty"`
}

// IsEmpty reports whether the ad has nothing to send.
func (a Ad) IsEmpty() bool {
	return a.Text == "" && a.PhotoRef == "" && a.VideoRef == ""
}

// Kind returns how the ad is delivered. A photo wins over a video; text alone is
// sent as a plain message and otherwise becomes the media caption.
func (a Ad) Kind() AdKind {
	switch {
	case a.PhotoRef != "":
		return AdKindPhoto
	case a.VideoRef != "":
		return AdKindVideo
	case a.Text != "":
		return AdKindText
	default:
		return AdKindNone
	}
}

// UnmarshalJSON also accepts the "photo" and "video" keys written by older
// deployments of the bot.
func (a *Ad) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text     string `json:"text"`
		PhotoRef string `json:"photoRef"`
		VideoRef string `json:"videoRef"`
		Photo    string `json:"photo"`
		Video    string `json:"video"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Text = raw.Text
	a.PhotoRef = raw.PhotoRef
	if a.PhotoRef == "" {
		a.PhotoRef = raw.Photo
	}
	a.VideoRef = raw.VideoRef
	if a.VideoRef == "" {
		a.VideoRef = raw.Video
	}
	return nil
}
