// Command labelgen regenerates the branch-chain unit designator recognizer.
//
// Run it from the root of this repository, or pass the root as an argument:
//
//	go run ./cmd/labelgen [-v] [root]
//
// Output: pkg/recognizer/find_generated.go (commit this file). Regenerate
// whenever the label table in pkg/label changes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	osfs "github.com/hack-pad/hackpadfs/os"

	"github.com/kittclouds/unitlabel/pkg/labelgen"
)

func main() {
	cfg := labelgen.DefaultConfig()

	flag.BoolVar(&cfg.Verbose, "v", false, "add more output")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "add more output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: labelgen [-v|-verbose] [root]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	root := "."
	if flag.NArg() == 1 {
		root = flag.Arg(0)
	}

	logger := log.New(os.Stderr, "labelgen: ", 0)

	fsRoot, err := toFSPath(root)
	if err != nil {
		logger.Fatalf("resolve %s: %v", root, err)
	}
	cfg.Root = fsRoot

	if err := labelgen.Run(osfs.NewFS(), cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

// toFSPath converts a host path into the rooted, slash-separated form used
// by hackpadfs.
func toFSPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rel := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if rel == "" {
		return ".", nil
	}
	return rel, nil
}
