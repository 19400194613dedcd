// Command svparse parses preprocessed SystemVerilog and reports syntax errors.
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/svparse/svparse"
)

var version string = "dev"

type cli struct {
	Version kong.VersionFlag `help:"Show version."`
	Config  kong.ConfigFlag  `help:"Load flags from a JSON configuration file." placeholder:"FILE"`
	Verbose bool             `short:"v" help:"Log each file as it is parsed."`

	Parse   parseCmd   `cmd:"" help:"Parse SystemVerilog files."`
	Grammar grammarCmd `cmd:"" help:"Print the grammar accepted by the parser."`
}

// environment is bound into every command's Run method.
type environment struct {
	log    logrus.FieldLogger
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
}

func newCLI(cli *cli, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("svparse"),
		kong.Description(`A structural parser for preprocessed SystemVerilog.`),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, ".svparse.json", "~/.svparse.json"),
		kong.Vars{
			"version":   version,
			"max_depth": strconv.Itoa(svparse.DefaultMaxDepth),
		},
	}, options...)
	return kong.New(cli, options...)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = logrus.WarnLevel
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}

func main() {
	var cli cli
	parser, err := newCLI(&cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	env := &environment{
		log:    newLogger(os.Stderr, cli.Verbose),
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	err = kctx.Run(env)
	if err != nil {
		env.log.Error(err)
		os.Exit(1)
	}
}
