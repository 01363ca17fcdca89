// Package boxes implements the boxes subcommand, which prints the box
// tree of an ISO Base Media file.
package boxes

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/simonhull/mediadissect"
	"github.com/simonhull/mediadissect/cmd/mediadissect/render"
	"github.com/simonhull/mediadissect/internal/registry"
)

type Command struct {
	verbose bool  // include technical sample table boxes
	dump    bool  // hex dump each raw payload
	maxRaw  int64 // largest payload kept in memory
}

func (*Command) Name() string     { return "boxes" }
func (*Command) Synopsis() string { return "print the box tree of an ISO Base Media file" }
func (*Command) Usage() string {
	return `boxes [flags] <file>:
	Print the box tree of the file with decoded content for each
	recognized box. Fails when the file is not ISO Base Media.

`
}

func (cmd *Command) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.verbose, "v", false, "Include technical sample table boxes")
	f.BoolVar(&cmd.dump, "dump", false, "Hex dump each raw payload")
	f.Int64Var(&cmd.maxRaw, "max-raw", registry.DefaultMaxRawPayload, "Largest box payload to keep in memory, in bytes")
}

func (cmd *Command) Execute(_ context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one file argument")
		return subcommands.ExitUsageError
	}

	file, err := mediadissect.Open(fs.Arg(0), mediadissect.WithMaxRawPayload(cmd.maxRaw))
	if err != nil {
		log.Print("Failed to dissect file: ", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if len(file.Boxes) == 0 {
		log.Printf("No ISO Base Media boxes found in %s (detected %s)", file.Path, file.MediaType)
		return subcommands.ExitFailure
	}

	render.Boxes(os.Stdout, file.Boxes, render.Options{Verbose: cmd.verbose, Dump: cmd.dump})
	render.Warnings(os.Stdout, file)
	return subcommands.ExitSuccess
}
