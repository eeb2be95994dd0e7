package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86godisasm/internal/options"
)

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "boot.asm", GenerateOutputFilename("boot.bin"))
	assert.Equal(t, "image.asm", GenerateOutputFilename("image"))
	assert.Equal(t, "a/b/code.asm", GenerateOutputFilename("a/b/code.img"))
}

func TestGetFilesToProcess(t *testing.T) {
	opts := options.Program{Input: "test.bin"}
	files, err := GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(files))
	assert.Equal(t, "test.bin", files[0])
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.bin")
	output := filepath.Join(dir, "test.asm")

	// push rbp, mov rbp rsp, pop rbp, ret
	code := []byte{0x55, 0x48, 0x89, 0xe5, 0x5d, 0xc3}
	assert.NoError(t, os.WriteFile(input, code, 0o600))

	opts := options.Program{
		Input:  input,
		Output: output,
		Quiet:  true,
	}
	disasmOptions := options.NewDisassembler(64, 0x1000)

	logger := log.NewTestLogger(t)
	assert.NoError(t, ProcessFile(context.Background(), logger, opts, disasmOptions))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)

	listing := string(data)
	assert.True(t, strings.Contains(listing, "push rbp"))
	assert.True(t, strings.Contains(listing, "mov rbp, rsp"))
	assert.True(t, strings.Contains(listing, "ret"))
}

func TestCreateWriterDefaultsToStdout(t *testing.T) {
	w, err := createWriter(options.Program{})
	assert.NoError(t, err)
	assert.True(t, w == os.Stdout)
}

func TestProcessFileMissingInput(t *testing.T) {
	opts := options.Program{Input: filepath.Join(t.TempDir(), "missing.bin")}

	logger := log.NewTestLogger(t)
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler(64, 0))
	assert.Error(t, err)
}
