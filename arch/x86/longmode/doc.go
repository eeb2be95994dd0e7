// Package longmode implements instruction decoding for the 64 bit x86
// processor mode. It is the only mode with a REX prefix stage, a 64 bit
// default address size and RIP relative addressing, and the only mode in
// which the implied stack access width is fixed to 8 bytes regardless of
// an operand size override prefix.
package longmode
