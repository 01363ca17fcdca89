// Package frames implements the frames subcommand, which lists the
// ID3v2 frames of a file.
package frames

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/simonhull/mediadissect"
	"github.com/simonhull/mediadissect/cmd/mediadissect/render"
)

type Command struct {
	dump bool // hex dump each frame payload
}

func (*Command) Name() string     { return "frames" }
func (*Command) Synopsis() string { return "list the ID3v2 frames of a file" }
func (*Command) Usage() string {
	return `frames [flags] <file>:
	Print every ID3v2 frame of the file with its decoded content.
	Fails when the file carries no ID3v2 tag.

`
}

func (cmd *Command) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.dump, "dump", false, "Hex dump each frame payload")
}

func (cmd *Command) Execute(_ context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one file argument")
		return subcommands.ExitUsageError
	}

	file, err := mediadissect.Open(fs.Arg(0))
	if err != nil {
		log.Print("Failed to dissect file: ", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if file.Tag == nil {
		log.Printf("No ID3v2 tag found in %s (detected %s)", file.Path, file.MediaType)
		return subcommands.ExitFailure
	}

	render.Frames(os.Stdout, file.Tag, render.Options{Dump: cmd.dump})
	render.Warnings(os.Stdout, file)
	return subcommands.ExitSuccess
}
