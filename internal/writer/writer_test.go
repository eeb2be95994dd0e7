package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/x86godisasm/internal/options"
	"github.com/retroenv/x86godisasm/internal/program"
)

func testListing() *program.Listing {
	listing := program.New(0x1000, 64, 7)
	listing.Offsets = []program.Offset{
		{Address: 0x1000, OpcodeBytes: []byte{0x55}, Code: "push rbp"},
		{Address: 0x1001, OpcodeBytes: []byte{0x90}, Code: "nop", Label: "label_1001"},
		{Address: 0x1002, OpcodeBytes: []byte{0xc3}, Code: "ret"},
		{Address: 0x1003, OpcodeBytes: []byte{0xde}, IsData: true},
		{Address: 0x1004, OpcodeBytes: []byte{0xad}, IsData: true},
		{Address: 0x1005, OpcodeBytes: []byte{0xbe}, IsData: true},
		{Address: 0x1006, OpcodeBytes: []byte{0xef}, IsData: true},
	}
	return listing
}

func TestWriteListing(t *testing.T) {
	var buf bytes.Buffer
	opts := options.NewDisassembler(64, 0x1000)

	assert.NoError(t, New(testListing(), &buf, opts).Write())
	output := buf.String()

	assert.True(t, strings.Contains(output, "; Processor mode: 64 bit"))
	assert.True(t, strings.Contains(output, "; Base address: 0x1000"))
	assert.True(t, strings.Contains(output, "label_1001:"))
	assert.True(t, strings.Contains(output, "push rbp"))
	assert.True(t, strings.Contains(output, "0x1000  55"))
	assert.True(t, strings.Contains(output, ".byte 0xde, 0xad, 0xbe, 0xef"))
}

func TestWriteListingWithoutComments(t *testing.T) {
	var buf bytes.Buffer
	opts := options.NewDisassembler(64, 0x1000)
	opts.HexComments = false
	opts.OffsetComments = false

	assert.NoError(t, New(testListing(), &buf, opts).Write())
	output := buf.String()

	assert.True(t, strings.Contains(output, "  push rbp\n"))
	assert.True(t, strings.Contains(output, ".byte 0xde, 0xad, 0xbe, 0xef\n"))
	assert.False(t, strings.Contains(output, "; 0x1000"))
}

func TestWriteBundlesDataLines(t *testing.T) {
	listing := program.New(0, 64, 20)
	for i := 0; i < 20; i++ {
		listing.Offsets = append(listing.Offsets, program.Offset{
			Address:     uint64(i),
			OpcodeBytes: []byte{byte(i)},
			IsData:      true,
		})
	}

	var buf bytes.Buffer
	opts := options.NewDisassembler(64, 0)
	opts.OffsetComments = false

	assert.NoError(t, New(listing, &buf, opts).Write())

	var dataLines int
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, ".byte ") {
			dataLines++
		}
	}
	assert.Equal(t, 2, dataLines) // 16 bytes on the first line, 4 on the second
}
