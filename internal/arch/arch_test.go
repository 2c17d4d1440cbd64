// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "hexv/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"hexv/internal/glyph": {
			"hexv/internal/",
		},
		"hexv/internal/escape": {
			"hexv/internal/stream", "hexv/internal/writers", "hexv/internal/fontsrc",
			"hexv/internal/input", "hexv/internal/cli", "hexv/internal/cmdutil",
			"hexv/internal/app", "hexv/cmd/",
		},
		"hexv/internal/fontsrc": {
			"hexv/internal/escape", "hexv/internal/stream", "hexv/internal/writers",
			"hexv/internal/cli", "hexv/internal/app", "hexv/cmd/",
		},
		"hexv/internal/stream": {
			"hexv/internal/fontsrc", "hexv/internal/input", "hexv/internal/cli",
			"hexv/internal/app", "hexv/cmd/",
		},
		"hexv/internal/writers": {
			"hexv/internal/escape", "hexv/internal/stream", "hexv/internal/cli",
			"hexv/internal/app", "hexv/cmd/",
		},
		"hexv/internal/input": {
			"hexv/internal/escape", "hexv/internal/stream", "hexv/internal/cli",
			"hexv/internal/app", "hexv/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "hexv/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "hexv/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
