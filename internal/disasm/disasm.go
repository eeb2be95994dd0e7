// Package disasm implements the linear sweep disassembler on top of the
// mode specific instruction decoders.
package disasm

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/x86godisasm/arch/x86"
	"github.com/retroenv/x86godisasm/internal/arch"
	"github.com/retroenv/x86godisasm/internal/options"
	"github.com/retroenv/x86godisasm/internal/program"
)

// Disasm implements a sweeping disassembler for a flat binary image.
type Disasm struct {
	arch    arch.Architecture
	logger  *log.Logger
	options options.Disassembler

	image       []byte
	baseAddress uint64

	branchDestinations   set.Set[uint64] // set of all addresses that are branched to
	functionDestinations set.Set[uint64] // set of all addresses that are called
}

// decodedOffset carries the sweep state of one decoded offset before
// labels are assigned.
type decodedOffset struct {
	program.Offset

	instruction x86.Instruction
	target      uint64
	hasTarget   bool
}

// New creates a new disassembler for the given binary image.
func New(logger *log.Logger, ar arch.Architecture, image []byte,
	opts options.Disassembler) *Disasm {

	return &Disasm{
		arch:                 ar,
		logger:               logger,
		options:              opts,
		image:                image,
		baseAddress:          opts.BaseAddress,
		branchDestinations:   set.New[uint64](),
		functionDestinations: set.New[uint64](),
	}
}

// Process disassembles the image and returns the program listing.
func (dis *Disasm) Process(ctx context.Context) (*program.Listing, error) {
	offsets, err := dis.sweep(ctx)
	if err != nil {
		return nil, err
	}

	dis.assignLabels(offsets)

	listing := program.New(dis.baseAddress, dis.arch.BitMode(), len(dis.image))
	listing.Offsets = make([]program.Offset, 0, len(offsets))
	for _, offset := range offsets {
		listing.Offsets = append(listing.Offsets, offset.Offset)
	}
	return listing, nil
}

// sweep decodes the image linearly from the base address. A decode error
// marks a single data byte and the sweep resumes at the following byte.
func (dis *Disasm) sweep(ctx context.Context) ([]decodedOffset, error) {
	var offsets []decodedOffset

	for position := 0; position < len(dis.image); {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sweep cancelled: %w", err)
		}

		address := dis.baseAddress + uint64(position)
		reader := x86.NewBytesReader(address, dis.image[position:])

		instruction, err := dis.arch.Decode(reader)
		if err != nil {
			dis.logger.Debug("Marking data byte",
				log.Hex("address", address),
				log.Err(err))
			offsets = append(offsets, decodedOffset{
				Offset: program.Offset{
					Address:     address,
					OpcodeBytes: dis.image[position : position+1],
					IsData:      true,
				},
			})
			position++
			continue
		}

		offset := decodedOffset{
			Offset: program.Offset{
				Address:     address,
				OpcodeBytes: dis.image[position : position+instruction.Len()],
				Code:        instruction.String(),
			},
			instruction: instruction,
		}
		dis.collectBranchTarget(&offset)

		dis.logger.Debug("Decoded instruction",
			log.Hex("address", address),
			log.String("code", offset.Code))

		offsets = append(offsets, offset)
		position += instruction.Len()
	}
	return offsets, nil
}

// collectBranchTarget records the destination of a relative branch or
// call if it lands inside the image.
func (dis *Disasm) collectBranchTarget(offset *decodedOffset) {
	instruction := offset.instruction
	opcode := instruction.Opcode()

	_, branches := x86.BranchingInstructions[opcode]
	_, calls := x86.CallInstructions[opcode]
	if !branches && !calls {
		return
	}
	if instruction.OperandCount() == 0 {
		return
	}
	operand := instruction.Operand(0)
	if operand.Kind != x86.OperandRelative {
		return
	}

	target := offset.Address + uint64(instruction.Len()) + uint64(operand.Imm)
	if target < dis.baseAddress || target >= dis.baseAddress+uint64(len(dis.image)) {
		return
	}

	offset.target = target
	offset.hasTarget = true

	if calls {
		dis.functionDestinations.Add(target)
	} else {
		dis.branchDestinations.Add(target)
	}
}

// assignLabels names all branch and call destinations that match an
// instruction start and rewrites the referencing instructions to use
// the label.
func (dis *Disasm) assignLabels(offsets []decodedOffset) {
	labels := map[uint64]string{}

	for i := range offsets {
		offset := &offsets[i]
		if offset.IsData {
			continue
		}
		switch {
		case dis.functionDestinations.Contains(offset.Address):
			offset.Label = fmt.Sprintf("func_%04x", offset.Address)
		case dis.branchDestinations.Contains(offset.Address):
			offset.Label = fmt.Sprintf("label_%04x", offset.Address)
		default:
			continue
		}
		labels[offset.Address] = offset.Label
	}

	for i := range offsets {
		offset := &offsets[i]
		if !offset.hasTarget {
			continue
		}
		label, ok := labels[offset.target]
		if !ok {
			continue
		}
		offset.Code = fmt.Sprintf("%s %s", offset.instruction.Opcode(), label)
	}
}
