//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// State is the input field an admin session is waiting for
// ENUM(idle,awaiting_channel_add,awaiting_channel_remove,awaiting_ad_text,awaiting_ad_media)
type State string

// ContentType is the kind of content an inbound message carries
// ENUM(text,photo,video,other)
type ContentType string
