// Package x86 contains the processor mode independent model for x86
// instruction decoding: opcodes, registers, segments, operands and the
// contracts that the three mode specific decoder packages implement.
//
// The mode specific decoders live in the realmode, protectedmode and
// longmode sub packages. They share no code paths for decoding since the
// encoding rules of the three modes are mutually exclusive rule sets, but
// they all produce instructions satisfying the Instruction interface of
// this package, allowing mode agnostic tooling to be written once.
package x86
