// Package main provides the cookiegen command, the adapter the xzspider2
// crawler drives as a child process. The crawler writes one acw_sc__v2
// challenge (arg1) per line to cookiegen's stdin and reads one cookie value
// per line back from its stdout. Records that fail to decode are dropped
// silently, and the process exits 0 once stdin closes.
//
// Alternatively, challenges captured to files (optionally .zst or .gz
// compressed) can be decoded in batch with -files.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"sync"

	"github.com/Cycloctane/xzspider2/internal/acw"
	"github.com/Cycloctane/xzspider2/internal/adapter"
	"github.com/Cycloctane/xzspider2/internal/config"
	"github.com/Cycloctane/xzspider2/internal/io/dlog"
	"github.com/Cycloctane/xzspider2/internal/version"
)

func main() {
	var args config.Args
	var displayVersion bool

	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.StringVar(&args.ConfigFile, "cfg", "", "Config file path")
	flag.StringVar(&args.FilesStr, "files", "",
		"Decode captured record file(s) instead of stdin (comma separated)")
	flag.StringVar(&args.Logger, "logger", "", "Logger name (none, stderr)")
	flag.StringVar(&args.LogLevel, "logLevel", "", "Log level")

	flag.Parse()
	config.Setup(&args)

	if displayVersion {
		version.PrintAndExit()
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	dlog.Start(ctx, &wg)

	decoder, err := acw.NewDecoder(config.Decoder.Positions, config.Decoder.Mask)
	if err != nil {
		panic(err)
	}
	processor := acw.NewCookieProcessor(decoder, os.Stdout)

	var files []string
	if args.FilesStr != "" {
		files = strings.Split(args.FilesStr, ",")
	}

	a := adapter.New(os.Stdin, processor, files)
	status := a.Start(ctx)
	cancel()

	wg.Wait()
	os.Exit(status)
}
