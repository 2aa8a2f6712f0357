// Package flagx helps several flag sets share one command line: each
// consumer keeps only the arguments it understands.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the given flags.
//
// valued flags take a value either inline (-d=dsn) or as the next argument
// (-d dsn). switches are boolean flags: they never consume the following
// argument, and their value can only be given inline (-k=false).
//
// The result is never nil, so it can be passed to flag.FlagSet.Parse as is.
func FilterArgs(args []string, valued []string, switches ...string) []string {
	kinds := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		kinds[f] = true
	}
	for _, f := range switches {
		kinds[f] = false
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, inline := strings.Cut(arg, "=")
		takesValue, known := kinds[name]
		if !known {
			continue
		}

		filtered = append(filtered, arg)
		if inline || !takesValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// It returns "" when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
