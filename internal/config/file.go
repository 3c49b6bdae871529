package config

// File represents the structure of the .credscan configuration file.
// Every field is optional; CLI flags always override file values.
type File struct {
	// Keywords are default filter keywords applied when --keywords is not
	// given on the command line.
	Keywords []string `yaml:"keywords,omitempty"`

	// Extensions overrides the file extension set collected during
	// directory walks. Entries may be given with or without a leading dot.
	Extensions []string `yaml:"extensions,omitempty"`

	// ErrorLog overrides the default error log path.
	ErrorLog string `yaml:"errorLog,omitempty"`
}

// Apply merges the file values into cfg. Only fields that are unset on the
// config (still at their zero or default value) are taken from the file, so
// command-line flags win.
func (f *File) Apply(cfg *Config) {
	if len(cfg.Keywords) == 0 && len(f.Keywords) > 0 {
		cfg.Keywords = append([]string(nil), f.Keywords...)
	}
	if len(f.Extensions) > 0 {
		cfg.Extensions = normalizeExtensions(f.Extensions)
	}
	if cfg.ErrorLogPath == DefaultErrorLogPath && f.ErrorLog != "" {
		cfg.ErrorLogPath = f.ErrorLog
	}
}

// normalizeExtensions ensures every extension has a leading dot.
func normalizeExtensions(exts []string) []string {
	result := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		result = append(result, ext)
	}
	return result
}
