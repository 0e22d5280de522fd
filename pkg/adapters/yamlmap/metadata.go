package yamlmap

// NodeMetadata represents one entry of the graph source.
// It uses "mapstructure" tags to match the system-map YAML keys. Keys not listed here
// (used_by, owner, coverage, ...) are ignored.
type NodeMetadata struct {
	DependsOn []string `mapstructure:"depends_on"`
	Docs      []string `mapstructure:"docs"`
	Priority  string   `mapstructure:"priority"`
	Status    string   `mapstructure:"status"`
}
