// Package realmode implements instruction decoding for the 16 bit x86
// processor mode. Operand and address size default to 2 bytes, the
// override prefixes select the 32 bit sizes, making both the 16 bit
// base/index pair addressing and the full ModRM/SIB forms reachable.
// Implied stack accesses follow the effective operand size.
package realmode
