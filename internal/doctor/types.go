package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnvironment represents problems with the host environment.
	CategoryEnvironment IssueCategory = "environment"
	// CategoryConfig represents problems with the configuration file.
	CategoryConfig IssueCategory = "config"
	// CategoryRoots represents problems with configured scan roots.
	CategoryRoots IssueCategory = "roots"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // config field, root path, or tool name
	Description string        // human-readable description
	Category    IssueCategory // issue category
}

// Stats tracks healthy counts alongside the issues.
type Stats struct {
	RootsOK    int // roots that exist and are directories
	RootsBad   int // roots that are missing or not directories
	Repos      int // repositories found under the healthy roots
	StylesOK   int // styles that resolve against the column registry
	StylesBad  int // styles with unknown columns
	CycleOK    bool
	SortOK     bool
	GitOK      bool
	ConfigOK   bool
	ConfigPath string
}
