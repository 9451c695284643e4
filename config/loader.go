package config

// Loader fills a target struct
type Loader interface {
	Load(target any) error
}
