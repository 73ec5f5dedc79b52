package spec

type debugSection struct {
	PrintDocument bool `yaml:"print_document"`
	PrintCounter  bool `yaml:"print_counter"`
	ValueMaxBytes int  `yaml:"value_max_bytes"`
}

type RuleSpec struct {
	Variant      string   `yaml:"variant"`
	MessageField string   `yaml:"message_field"`
	AbsentFields []string `yaml:"absent_fields"`
}

type File struct {
	SchemaVersion string `yaml:"schema_version"`

	Source struct {
		Kind   string `yaml:"kind"`
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"source"`

	// Enum path and absent marker shared by every rule.
	Enum        string `yaml:"enum"`
	AbsentValue string `yaml:"absent_value"`

	// Ordered list of substitution rules applied between source and sinks.
	Rules []RuleSpec `yaml:"rules"`

	Sinks []string     `yaml:"sinks"`
	Debug debugSection `yaml:"debug"`
}
