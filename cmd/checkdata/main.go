// Command checkdata verifies that the board's data file decodes and prints
// a short summary. It takes the same file lock as the server, so it is safe
// to run against a live board.
//
// Flags:
//
//	--quarantine  move an undecodable file aside instead of failing
//
// Exit codes: 0 = file is readable, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/memoboard/internal/adapter/jsonfile"
	"github.com/heartmarshall/memoboard/internal/app"
	"github.com/heartmarshall/memoboard/internal/config"
	"github.com/heartmarshall/memoboard/internal/domain"
)

func main() {
	quarantineFlag := flag.Bool("quarantine", false, "move an undecodable data file aside")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store := jsonfile.New(logger, cfg.Storage.DataFile, jsonfile.Options{
		LockTimeout:       cfg.Storage.LockTimeout,
		QuarantineCorrupt: *quarantineFlag,
	})
	defer store.Close()

	memos, err := store.Load(ctx)
	if err != nil {
		logger.Error("data file check failed",
			slog.String("error", err.Error()),
			slog.String("data_file", store.Path()),
		)
		os.Exit(1)
	}

	var pinned, checklists int
	for _, m := range memos {
		if m.Pinned {
			pinned++
		}
		if m.Type == domain.MemoTypeChecklist {
			checklists++
		}
	}

	logger.Info("data file check completed",
		slog.String("data_file", store.Path()),
		slog.Int("memos", len(memos)),
		slog.Int("pinned", pinned),
		slog.Int("checklists", checklists),
	)
}
