// Package compileinfo reports which commit a panbiom binary was built from,
// so that results can be traced back to the code that produced them.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime/debug"
)

type CompileInfo struct {
	Binary     string
	Module     string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	commit := c.Commit
	if commit == "" {
		commit = "unknown"
	}

	return fmt.Sprintf("%s %s (%s) was built with %s at commit %s, time %v.%s", c.Binary, c.Version, c.Module, c.GoVersion, commit, c.CommitTime, mod)
}

// Short is the binary name and module version, for -version output.
func (c CompileInfo) Short() string {
	return fmt.Sprintf("%s %s", c.Binary, c.Version)
}

func Get() CompileInfo {
	out := CompileInfo{
		Binary:  path.Base(os.Args[0]),
		Version: "(devel)",
	}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Module = z.Main.Path
	if z.Main.Version != "" {
		out.Version = z.Main.Version
	}
	if z.Path != "" {
		out.Binary = path.Base(z.Path)
	}
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintf(w, "%s\n", Get())
}
