// Package dissect implements the dissect subcommand, which prints the
// full decoded metadata structure of a media file.
package dissect

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

func (*Command) Name() string     { return "dissect" }
func (*Command) Synopsis() string { return "show the full metadata structure of a file" }
func (*Command) Usage() string {
	return `dissect [flags] <file>:
	Detect the file's format and print its decoded metadata structure:
	the tag header and frames for ID3v2 files, or the box tree for
	ISO Base Media files.

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

	opts := render.Options{Verbose: cmd.verbose, Dump: cmd.dump}
	render.Banner(os.Stdout, file)
	switch {
	case file.Tag != nil:
		render.TagHeader(os.Stdout, file.Tag)
		render.Frames(os.Stdout, file.Tag, opts)
	case len(file.Boxes) > 0:
		render.FileTypeHeader(os.Stdout, file)
		render.Boxes(os.Stdout, file.Boxes, opts)
	}
	render.Warnings(os.Stdout, file)
	return subcommands.ExitSuccess
}
