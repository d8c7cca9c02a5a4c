package domain

import "github.com/samber/lo"

// Inbound is a message from the transport, reduced to what the router needs.
type Inbound struct {
	SenderID    int64
	ChatID      int64
	Text        string
	ContentType ContentType
	Media       []MediaVariant
}

// MediaVariant is one resolution of an uploaded photo or video. Ref is the
// provider-issued handle that can be sent again without re-uploading.
type MediaVariant struct {
	Ref    string
	Width  int
	Height int
}

// MediaRef returns the reference of the largest variant, or "" when the
// message carries no media.
func (m Inbound) MediaRef() string {
	if len(m.Media) == 0 {
		return ""
	}
	best := lo.MaxBy(m.Media, func(a, b MediaVariant) bool {
		return a.Width*a.Height > b.Width*b.Height
	})
	return best.Ref
}
