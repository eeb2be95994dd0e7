// Package protectedmode implements instruction decoding for the 32 bit
// x86 processor mode. Operand and address size default to 4 bytes, the
// override prefixes select the 16 bit sizes, and a REX byte is ordinary
// opcode space (inc/dec). Implied stack accesses follow the effective
// operand size, the 64 bit fixed slot rule does not apply here.
package protectedmode
