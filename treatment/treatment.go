// Package treatment reads the plain text file naming the samples, and
// optionally their replicate groups, that a core computation should use.
//
// Each non-blank line is either a sample name alone or a sample name and a
// group name separated by a tab. A file uses one form or the other
// throughout, and a sample may be listed only once.
package treatment

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/timkahlke/panbiom"
	"github.com/timkahlke/panbiom/core"
)

type MalformedGroupFileError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedGroupFileError) Error() string {
	if e.Line == 0 {
		return "treatment file: " + e.Reason
	}
	return fmt.Sprintf("treatment file line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// Treatments is the parsed content of a treatment file.
type Treatments struct {
	// Samples lists every sample in file order.
	Samples []string

	// Groups holds the replicate groups in order of first appearance, each
	// with its members in file order. It is empty for a file of bare sample
	// names.
	Groups []core.ReplicateGroup
}

func (t Treatments) Grouped() bool { return len(t.Groups) > 0 }

// Request turns the treatments into a core request: replicate groups when the
// file had them, a plain sample selection otherwise.
func (t Treatments) Request(opts core.Options) core.Request {
	if t.Grouped() {
		return core.Request{Groups: t.Groups, Options: opts}
	}
	return core.Request{Samples: t.Samples, Options: opts}
}

// Open reads the treatment file at path, local or gs://.
func Open(ctx context.Context, path string, client *storage.Client) (Treatments, error) {
	rc, err := panbiom.OpenInput(ctx, path, client)
	if err != nil {
		return Treatments{}, err
	}
	defer rc.Close()

	return Read(rc)
}

func Read(r io.Reader) (Treatments, error) {
	var (
		out        Treatments
		grouped    bool
		lineNumber int
		groupIndex = make(map[string]int)
		seen       = make(map[string]int)
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		malformed := func(reason string) error {
			return &MalformedGroupFileError{Line: lineNumber, Text: text, Reason: reason}
		}

		switch {
		case len(fields) > 2:
			return Treatments{}, malformed(fmt.Sprintf("expected 1 or 2 tab separated fields, found %d", len(fields)))
		case len(out.Samples) > 0 && grouped != (len(fields) == 2):
			return Treatments{}, malformed("mixes lines with and without a group name")
		}

		sample := fields[0]
		if previous, exists := seen[sample]; exists {
			return Treatments{}, malformed(fmt.Sprintf("sample %q was already listed on line %d", sample, previous))
		}
		seen[sample] = lineNumber
		grouped = len(fields) == 2
		out.Samples = append(out.Samples, sample)

		if !grouped {
			continue
		}

		// Members accumulate; a later line never replaces earlier replicates.
		name := fields[1]
		k, exists := groupIndex[name]
		if !exists {
			k = len(out.Groups)
			groupIndex[name] = k
			out.Groups = append(out.Groups, core.ReplicateGroup{Name: name})
		}
		out.Groups[k].Samples = append(out.Groups[k].Samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return Treatments{}, pfx.Err(err)
	}

	if len(out.Samples) == 0 {
		return Treatments{}, &MalformedGroupFileError{Reason: "no samples were listed"}
	}

	return out, nil
}
