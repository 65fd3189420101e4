package internalcheck

import (
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const backendPkg = "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

// TestOnlyBackendImportsC keeps setjmp/longjmp frames and raw C types out of
// every package but the backend.
func TestOnlyBackendImportsC(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, "github.com/hsiuhsiu/quest-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	fset := token.NewFileSet()

	for _, pkg := range pkgs {
		if pkg.PkgPath == backendPkg {
			continue
		}
		for _, path := range pkg.GoFiles {
			file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range file.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if p == "C" || p == "unsafe" {
					findings = append(findings, fmt.Sprintf("%s: %s imports %q", fset.Position(imp.Pos()), pkg.PkgPath, p))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo confinement violation:\n%s", strings.Join(findings, "\n"))
	}
}
