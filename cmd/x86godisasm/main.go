// Package main implements an x86 flat binary disassembler
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/x86godisasm/internal/cli"
	"github.com/retroenv/x86godisasm/internal/config"
	"github.com/retroenv/x86godisasm/internal/fileprocessor"
)

var (
	version = "0.1.0"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts.Quiet)
			usageErr.ShowUsage()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}

	printBanner(opts.Quiet)

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	for _, file := range files {
		opts.Input = file
		// single file without an output flag writes to stdout
		if len(files) > 1 {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions); err != nil {
			fmt.Println(fmt.Errorf("disassembling failed: %w", err))
			os.Exit(1)
		}
	}
}

func printBanner(quiet bool) {
	if quiet {
		return
	}
	fmt.Println("[----------------------------------------]")
	fmt.Println("[ x86godisasm - x86 binary disassembler  ]")
	fmt.Printf("[----------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
