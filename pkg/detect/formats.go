package detect

import "regexp"

// Format is a well-known log line layout: a pattern whose capture groups map
// to the listed columns. A detected format can be used directly as a parse
// job's pattern and columns.
type Format struct {
	// Name identifies the format.
	Name string

	// Description is a short human-readable summary.
	Description string

	// PatternStr is the regular expression source.
	PatternStr string

	// Columns names the capture groups in declaration order.
	Columns []string

	// Pattern is the compiled expression.
	Pattern *regexp.Regexp
}

// DefaultFormats returns the built-in format catalog.
func DefaultFormats() []*Format {
	formats := []*Format{
		{
			Name:        "apache_combined",
			Description: "Apache/nginx combined access log",
			PatternStr:  `^(\S+) (\S+) (\S+) \[([^\]]+)\] "([^"]*)" (\d{3}) (\S+) "([^"]*)" "([^"]*)"`,
			Columns:     []string{"remote_host", "identity", "user", "timestamp", "request", "status", "bytes", "referer", "user_agent"},
		},
		{
			Name:        "apache_common",
			Description: "Apache/nginx common access log",
			PatternStr:  `^(\S+) (\S+) (\S+) \[([^\]]+)\] "([^"]*)" (\d{3}) (\S+)`,
			Columns:     []string{"remote_host", "identity", "user", "timestamp", "request", "status", "bytes"},
		},
		{
			Name:        "syslog",
			Description: "BSD syslog (RFC 3164)",
			PatternStr:  `^([A-Z][a-z]{2} [ \d]\d \d{2}:\d{2}:\d{2}) (\S+) ([^\[:\s]+)(?:\[(\d+)\])?: (.*)$`,
			Columns:     []string{"timestamp", "host", "program", "pid", "message"},
		},
		{
			Name:        "bracketed_level",
			Description: "Bracketed timestamp and level, e.g. [2006-01-02 15:04:05] [INFO] msg",
			PatternStr:  `^\[(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}[^\]]*)\] \[?(\w+)\]? (.*)$`,
			Columns:     []string{"timestamp", "level", "message"},
		},
		{
			Name:        "timestamp_level",
			Description: "ISO timestamp, level, message, e.g. 2006-01-02T15:04:05Z INFO msg",
			PatternStr:  `^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}\S*) +([A-Za-z]+) +(.*)$`,
			Columns:     []string{"timestamp", "level", "message"},
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
