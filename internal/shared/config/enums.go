//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// StorageDriver selects the document store backing the broadcast configuration
// ENUM(file,sqlite,redis,mongo)
type StorageDriver string
