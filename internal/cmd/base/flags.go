package base

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps flag.FlagSet so command help can render the registered
// flags with their defaults.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a flag set that reports errors through the
// command, not the standard library's own output.
func NewFlagSet(name string) *FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help renders the flag list for a command's Help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("Options:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s\n", fl.Name)
		usage := strings.ReplaceAll(fl.Usage, "\n", "\n      ")
		fmt.Fprintf(&b, "      %s", usage)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, " Defaults to %q.", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}

// Changed reports whether a flag was set explicitly on the command
// line, which is how optional update fields distinguish "leave alone"
// from "set to this value".
func (f *FlagSet) Changed(name string) bool {
	changed := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			changed = true
		}
	})
	return changed
}
