package driver

import (
	"strings"

	"fncomp/internal/abi"
	"fncomp/internal/observ"
	"fncomp/internal/project"
)

// Options configures expansion of one file or a directory.
type Options struct {
	Contract abi.Contract
	// Attributes lists the attribute paths that mark a functional component.
	// A leading `::` on the attribute in source is ignored.
	Attributes     []string
	Cache          *DiskCache // nil disables caching
	MaxDiagnostics int
	Jobs           int
	Progress       ProgressSink
	Timer          *observ.Timer
	// WriteSuffix, when set, makes the driver write every changed file next
	// to its input: "app.rs" -> "app" + WriteSuffix.
	WriteSuffix string
	// ReportInfo adds an info diagnostic for every successful expansion.
	ReportInfo bool
	// Exclude filters files in ExpandDir.
	Exclude func(path string) bool
}

// OptionsFromConfig fills contract, attributes and suffix from a manifest config.
func OptionsFromConfig(cfg project.Config) Options {
	return Options{
		Contract:   cfg.Contract(),
		Attributes: append([]string(nil), cfg.Expand.Attributes...),
		Jobs:       cfg.Expand.Jobs,
	}
}

func (o Options) withDefaults() Options {
	if len(o.Attributes) == 0 {
		o.Attributes = project.DefaultAttributes
	}
	if o.Contract == (abi.Contract{}) {
		o.Contract = abi.Default()
	}
	return o
}

func (o Options) matches(path string) bool {
	path = strings.TrimPrefix(path, "::")
	for _, a := range o.Attributes {
		if path == a {
			return true
		}
	}
	return false
}

// OutputPath returns where `--write` puts the expansion of path.
func OutputPath(path, suffix string) string {
	return strings.TrimSuffix(path, ".rs") + suffix
}
