package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/dolthub/recordcodec/record"
	"github.com/dolthub/recordcodec/schema"
)

func runDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	configPath, schemaPath := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: recdump decode [flags] <record-file>")
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	configureLogging(cfg)

	sch, err := resolveSchema(cfg, *schemaPath)
	if err != nil {
		log.WithField("run_id", newRunID()).Error(err)
		return 1
	}

	doc, err := decodeFile(fs.Arg(0), sch)
	if err != nil {
		log.WithField("run_id", newRunID()).WithField("file", fs.Arg(0)).Error(err)
		return 1
	}

	printDocument(os.Stdout, doc, 0)
	return 0
}

func decodeFile(path string, sch schema.Schema) (*record.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}

	doc, err := record.DecodeDocument(buf, sch)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", path)
	}
	return doc, nil
}

func printDocument(w io.Writer, doc *record.Document, depth int) {
	indent := strings.Repeat("  ", depth)
	class := "(none)"
	if doc.Class != nil {
		class = *doc.Class
	}
	fmt.Fprintf(w, "%sclass: %s\n", indent, class)
	for _, f := range doc.Fields {
		fmt.Fprintf(w, "%s  %s (%s): ", indent, f.Name, f.Type)
		if f.Value == nil {
			fmt.Fprintln(w, "null")
			continue
		}
		if child, ok := f.Value.(*record.Document); ok {
			fmt.Fprintln(w)
			printDocument(w, child, depth+2)
			continue
		}
		fmt.Fprintf(w, "%v\n", f.Value)
	}
}
