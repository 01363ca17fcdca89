// Command mediadissect analyzes the metadata structures of media
// files: ID3v2 tags and ISO Base Media box trees.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/simonhull/mediadissect"
	"github.com/simonhull/mediadissect/cmd/mediadissect/boxes"
	"github.com/simonhull/mediadissect/cmd/mediadissect/dissect"
	"github.com/simonhull/mediadissect/cmd/mediadissect/frames"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage %v: <command> [flag]... <file>\n"+
			"Dissects the metadata structures of media files.\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	log.SetFlags(0)
	log.SetPrefix("mediadissect: ")

	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.HelpCommand(), "")

	subcommands.Register(&dissect.Command{}, "")
	subcommands.Register(&frames.Command{}, "")
	subcommands.Register(&boxes.Command{}, "")
	subcommands.Register(&versionCommand{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// Small enough to live here instead of its own package.
type versionCommand struct{}

func (*versionCommand) Name() string     { return "version" }
func (*versionCommand) Synopsis() string { return "print version information" }
func (*versionCommand) Usage() string {
	return `version:
	Print the mediadissect version along with build details.

`
}
func (*versionCommand) SetFlags(f *flag.FlagSet) {}
func (*versionCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	info := mediadissect.GetVersionInfo()
	fmt.Printf("mediadissect %s\n", info.Version)
	fmt.Printf("  commit: %s\n", info.GitCommit)
	fmt.Printf("  built: %s\n", info.BuildTime)
	fmt.Printf("  go: %s\n", info.GoVersion)
	fmt.Printf("  formats: %s\n", strings.Join(mediadissect.SupportedMediaTypes(), ", "))
	return subcommands.ExitSuccess
}
