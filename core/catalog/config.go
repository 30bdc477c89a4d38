package catalog

// Config holds configuration for the catalog source.
type Config struct {
	// Source selects where the catalog is loaded from (file, storage, database).
	Source string `mapstructure:"source" default:"file"`
	// Path is the local JSON file path for the file source.
	Path string `mapstructure:"path" default:"cup_data.json"`
	// Object is the object name in the storage bucket for the storage source.
	Object string `mapstructure:"object" default:"catalog/cup_data.json"`
}

const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// IsValidSource checks if the configured source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage, SourceDatabase:
		return true
	default:
		return false
	}
}
