package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 8

func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	configPath, schemaPath := commonFlags(fs)
	ext := fs.String("ext", ".rec", "only decode files with this extension")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: recdump batch [flags] <directory>")
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	configureLogging(cfg)
	runID := newRunID()

	sch, err := resolveSchema(cfg, *schemaPath)
	if err != nil {
		log.WithField("run_id", runID).Error(err)
		return 1
	}

	files, err := listRecordFiles(fs.Arg(0), *ext)
	if err != nil {
		log.WithField("run_id", runID).Error(err)
		return 1
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	var decoded, failed int64
	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for _, path := range files {
		path := path
		g.Go(func() error {
			_, err := decodeFile(path, sch)
			entry := log.WithField("run_id", runID).WithField("file", path)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				entry.Warn(err)
				return nil // one bad file never aborts the batch
			}
			atomic.AddInt64(&decoded, 1)
			entry.Debug("decoded")
			return nil
		})
	}
	_ = g.Wait()

	log.WithField("run_id", runID).
		WithField("decoded", decoded).
		WithField("failed", failed).
		Info("batch complete")

	if failed > 0 {
		return 1
	}
	return 0
}

func listRecordFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory %q", dir)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
