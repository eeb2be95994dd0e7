// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86godisasm/internal/arch"
	"github.com/retroenv/x86godisasm/internal/disasm"
	"github.com/retroenv/x86godisasm/internal/options"
	"github.com/retroenv/x86godisasm/internal/program"
	"github.com/retroenv/x86godisasm/internal/writer"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {

	image, err := loadImage(opts)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	outputWriter, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := outputWriter.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	listing, err := disassemble(ctx, logger, image, disasmOptions)
	if err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}

	if opts.Dump {
		spew.Fdump(os.Stderr, listing)
	}

	if err := writer.New(listing, outputWriter, disasmOptions).Write(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func loadImage(opts options.Program) ([]byte, error) {
	image, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("file %s is empty", opts.Input)
	}
	return image, nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

func disassemble(ctx context.Context, logger *log.Logger, image []byte,
	disasmOptions options.Disassembler) (*program.Listing, error) {

	ar, err := arch.New(disasmOptions.BitMode)
	if err != nil {
		return nil, fmt.Errorf("creating architecture: %w", err)
	}

	dis := disasm.New(logger, ar, image, disasmOptions)
	listing, err := dis.Process(ctx)
	if err != nil {
		return nil, fmt.Errorf("processing image: %w", err)
	}
	return listing, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("x86godisasm",
		log.String("version", versionString),
		log.String("mode", fmt.Sprintf("%d bit", opts.BitMode)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
