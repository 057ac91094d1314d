// compileinfoprint is imported by the panbiom commands for the side effect of
// logging the build provenance to os.Stderr before anything else runs.
package compileinfoprint

import (
	"os"

	"github.com/timkahlke/panbiom/compileinfo"
)

func init() {
	compileinfo.Fprint(os.Stderr)
}
