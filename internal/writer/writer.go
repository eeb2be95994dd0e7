// Package writer implements assembly listing file writing functionality.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/x86godisasm/internal/options"
	"github.com/retroenv/x86godisasm/internal/program"
)

const dataBytesPerLine = 16

// Writer writes a program listing as an assembly file.
type Writer struct {
	listing *program.Listing
	options options.Disassembler
	writer  io.Writer
}

// New creates a new writer.
func New(listing *program.Listing, writer io.Writer, opts options.Disassembler) *Writer {
	return &Writer{
		listing: listing,
		options: opts,
		writer:  writer,
	}
}

// Write writes the whole listing including the comment header, all labels,
// code lines and bundled data lines.
func (w *Writer) Write() error {
	if err := w.writeCommentHeader(); err != nil {
		return err
	}

	var previousLineWasCode bool

	for i := 0; i < len(w.listing.Offsets); {
		offset := w.listing.Offsets[i]

		if err := w.writeLabel(i, offset); err != nil {
			return err
		}

		// print an empty line in case of data after code and vice versa
		if i > 0 && offset.Label == "" && offset.IsData == previousLineWasCode {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		previousLineWasCode = !offset.IsData

		if offset.IsData {
			count, err := w.bundleDataWrites(i)
			if err != nil {
				return err
			}
			i += count
			continue
		}

		if err := w.writeCodeLine(offset); err != nil {
			return err
		}
		i++
	}
	return nil
}

// writeCommentHeader writes the processor mode, base address and image
// size as comments to the output.
func (w *Writer) writeCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; Processor mode: %d bit\n", w.listing.BitMode); err != nil {
		return fmt.Errorf("writing processor mode: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Base address: 0x%04x\n", w.listing.BaseAddress); err != nil {
		return fmt.Errorf("writing base address: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Image size: %d bytes\n\n", w.listing.Size); err != nil {
		return fmt.Errorf("writing image size: %w", err)
	}
	return nil
}

func (w *Writer) writeLabel(index int, offset program.Offset) error {
	if offset.Label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", offset.Label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w *Writer) writeCodeLine(offset program.Offset) error {
	comment := w.lineComment(offset)
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", offset.Code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(w.writer, "  %-38s ; %s\n", offset.Code, comment); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// lineComment builds the comment of a code line out of the offset address,
// the opcode bytes in hex and a custom comment, based on the options.
func (w *Writer) lineComment(offset program.Offset) string {
	var parts []string

	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("0x%04x", offset.Address))
	}
	if w.options.HexComments {
		buf := &strings.Builder{}
		for i, b := range offset.OpcodeBytes {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%02x", b)
		}
		parts = append(parts, buf.String())
	}
	if offset.Comment != "" {
		parts = append(parts, offset.Comment)
	}
	return strings.Join(parts, "  ")
}

// bundleDataWrites bundles consecutive data offsets to print
// dataBytesPerLine bytes per line. It returns the number of consumed
// offsets.
func (w *Writer) bundleDataWrites(startIndex int) (int, error) {
	data := w.dataRun(startIndex)

	currentIndex := startIndex
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j := range toWrite {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "0x%02x", data[i+j])
		}

		offset := w.listing.Offsets[currentIndex]
		if w.options.OffsetComments {
			if _, err := fmt.Fprintf(w.writer, "%-40s ; 0x%04x\n", buf.String(), offset.Address); err != nil {
				return 0, fmt.Errorf("writing data line: %w", err)
			}
		} else {
			if _, err := fmt.Fprintf(w.writer, "%s\n", buf.String()); err != nil {
				return 0, fmt.Errorf("writing data line: %w", err)
			}
		}

		i += toWrite
		currentIndex += toWrite
		remaining -= toWrite
	}

	return len(data), nil
}

// dataRun collects the bytes of consecutive data offsets starting at the
// given index, stopping at the first code offset or label.
func (w *Writer) dataRun(startIndex int) []byte {
	var data []byte

	for i := startIndex; i < len(w.listing.Offsets); i++ {
		offset := w.listing.Offsets[i]
		if !offset.IsData {
			break
		}
		if i > startIndex && offset.Label != "" {
			break
		}
		data = append(data, offset.OpcodeBytes...)
	}
	return data
}
