// Command recdump decodes records produced by the record serialization
// core and prints their structure, for manual inspection and for
// exercising the codec against real files outside of the test suite.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/recordcodec/schema"
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "decode":
		return runDecode(rest)
	case "batch":
		return runBatch(rest)
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "recdump: unknown command %q\n", cmd)
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: recdump <command> [flags]

commands:
  decode   decode a single record file and print its structure
  batch    decode every record file in a directory concurrently
  help     show this message`)
}

func commonFlags(fs *flag.FlagSet) (configPath, schemaPath *string) {
	configPath = fs.String("config", "", "path to a recdump TOML config file")
	schemaPath = fs.String("schema", "", "path to a YAML schema definition (overrides the config file)")
	return
}

func resolveSchema(cfg Config, flagSchemaPath string) (schema.Map, error) {
	path := flagSchemaPath
	if path == "" {
		path = cfg.SchemaPath
	}
	if path == "" {
		return nil, nil
	}
	sch, err := schema.LoadYAML(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading schema %q", path)
	}
	return sch, nil
}

func configureLogging(cfg Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// newRunID mints a correlation id attached to every log line for a single
// invocation, so a batch run's interleaved per-file errors can be
// untangled in aggregated log output.
func newRunID() string {
	return uuid.NewString()
}
