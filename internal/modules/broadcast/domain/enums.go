//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AdKind represents the send method chosen for an ad
// ENUM(none,text,photo,video)
type AdKind string
