// Command bufpoolctl is a small driver around the bufferpool façade:
// load a YAML config, open the configured page file, run a scripted
// pin/unpin sequence, and print the resulting statistics. It exists
// to exercise internal/bufferpool end to end as a demo harness, not
// as a CLI surface for the library itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bufferpool/internal/bufferpool"
	"bufferpool/internal/config"
	"bufferpool/internal/replacement"
	"bufferpool/internal/storagemgr"
)

func main() {
	configPath := flag.String("config", "bufpoolctl.yaml", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "bufpoolctl:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	if err := storagemgr.CreatePageFile(cfg.Storage.PageFile); err != nil {
		return err
	}

	bp, err := bufferpool.Open(cfg.Storage.PageFile, cfg.Storage.Frames, replacement.Strategy(cfg.Storage.Strategy), sugar)
	if err != nil {
		return fmt.Errorf("open buffer pool: %w", err)
	}

	if err := demoSequence(bp, sugar); err != nil {
		return err
	}

	printStats(bp)
	return bp.Shutdown()
}

func buildLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// demoSequence pins and unpins a handful of pages so the pool has
// something to report on, logging each step.
func demoSequence(bp *bufferpool.BufferPool, log *zap.SugaredLogger) error {
	numFrames := len(bp.FixCounts())
	for page := 0; page < numFrames; page++ {
		h, err := bp.Pin(page)
		if err != nil {
			return fmt.Errorf("pin %d: %w", page, err)
		}
		copy(h.Data, []byte(fmt.Sprintf("page-%d", page)))
		if err := bp.MarkDirty(h); err != nil {
			return fmt.Errorf("mark dirty %d: %w", page, err)
		}
		if err := bp.Unpin(h); err != nil {
			return fmt.Errorf("unpin %d: %w", page, err)
		}
		log.Debugw("demo: touched page", "page", page)
	}
	return bp.ForceFlushPool()
}

func printStats(bp *bufferpool.BufferPool) {
	fmt.Println("frame contents:", bp.FrameContents())
	fmt.Println("dirty flags:   ", bp.DirtyFlags())
	fmt.Println("fix counts:    ", bp.FixCounts())
	fmt.Println("num read io:   ", bp.NumReadIO())
	fmt.Println("num write io:  ", bp.NumWriteIO())
}
