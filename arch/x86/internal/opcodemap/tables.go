package opcodemap

import (
	"github.com/retroenv/x86godisasm/arch/x86"
)

// LegacyOneByte is the primary opcode map with the legacy assignments
// shared by 16 and 32 bit mode. Long mode copies it and patches the
// slots it reassigns or invalidates. Prefix bytes are consumed before
// table lookup, their slots are never reached.
var LegacyOneByte = [256]Entry{
	0x00: {Op: x86.OpAdd, C: CodingEbGb},
	0x01: {Op: x86.OpAdd, C: CodingEvGv},
	0x02: {Op: x86.OpAdd, C: CodingGbEb},
	0x03: {Op: x86.OpAdd, C: CodingGvEv},
	0x04: {Op: x86.OpAdd, C: CodingALIb},
	0x05: {Op: x86.OpAdd, C: CodingAXIz},
	0x06: {Op: x86.OpPush, C: CodingSegReg, Arg: uint8(x86.ES)},
	0x07: {Op: x86.OpPop, C: CodingSegReg, Arg: uint8(x86.ES)},
	0x08: {Op: x86.OpOr, C: CodingEbGb},
	0x09: {Op: x86.OpOr, C: CodingEvGv},
	0x0a: {Op: x86.OpOr, C: CodingGbEb},
	0x0b: {Op: x86.OpOr, C: CodingGvEv},
	0x0c: {Op: x86.OpOr, C: CodingALIb},
	0x0d: {Op: x86.OpOr, C: CodingAXIz},
	0x0e: {Op: x86.OpPush, C: CodingSegReg, Arg: uint8(x86.CS)},
	0x0f: {C: CodingEscape},
	0x10: {Op: x86.OpAdc, C: CodingEbGb},
	0x11: {Op: x86.OpAdc, C: CodingEvGv},
	0x12: {Op: x86.OpAdc, C: CodingGbEb},
	0x13: {Op: x86.OpAdc, C: CodingGvEv},
	0x14: {Op: x86.OpAdc, C: CodingALIb},
	0x15: {Op: x86.OpAdc, C: CodingAXIz},
	0x16: {Op: x86.OpPush, C: CodingSegReg, Arg: uint8(x86.SS)},
	0x17: {Op: x86.OpPop, C: CodingSegReg, Arg: uint8(x86.SS)},
	0x18: {Op: x86.OpSbb, C: CodingEbGb},
	0x19: {Op: x86.OpSbb, C: CodingEvGv},
	0x1a: {Op: x86.OpSbb, C: CodingGbEb},
	0x1b: {Op: x86.OpSbb, C: CodingGvEv},
	0x1c: {Op: x86.OpSbb, C: CodingALIb},
	0x1d: {Op: x86.OpSbb, C: CodingAXIz},
	0x1e: {Op: x86.OpPush, C: CodingSegReg, Arg: uint8(x86.DS)},
	0x1f: {Op: x86.OpPop, C: CodingSegReg, Arg: uint8(x86.DS)},
	0x20: {Op: x86.OpAnd, C: CodingEbGb},
	0x21: {Op: x86.OpAnd, C: CodingEvGv},
	0x22: {Op: x86.OpAnd, C: CodingGbEb},
	0x23: {Op: x86.OpAnd, C: CodingGvEv},
	0x24: {Op: x86.OpAnd, C: CodingALIb},
	0x25: {Op: x86.OpAnd, C: CodingAXIz},
	0x26: {C: CodingPrefix},
	0x27: {Op: x86.OpDaa, C: CodingNone},
	0x28: {Op: x86.OpSub, C: CodingEbGb},
	0x29: {Op: x86.OpSub, C: CodingEvGv},
	0x2a: {Op: x86.OpSub, C: CodingGbEb},
	0x2b: {Op: x86.OpSub, C: CodingGvEv},
	0x2c: {Op: x86.OpSub, C: CodingALIb},
	0x2d: {Op: x86.OpSub, C: CodingAXIz},
	0x2e: {C: CodingPrefix},
	0x2f: {Op: x86.OpDas, C: CodingNone},
	0x30: {Op: x86.OpXor, C: CodingEbGb},
	0x31: {Op: x86.OpXor, C: CodingEvGv},
	0x32: {Op: x86.OpXor, C: CodingGbEb},
	0x33: {Op: x86.OpXor, C: CodingGvEv},
	0x34: {Op: x86.OpXor, C: CodingALIb},
	0x35: {Op: x86.OpXor, C: CodingAXIz},
	0x36: {C: CodingPrefix},
	0x37: {Op: x86.OpAaa, C: CodingNone},
	0x38: {Op: x86.OpCmp, C: CodingEbGb},
	0x39: {Op: x86.OpCmp, C: CodingEvGv},
	0x3a: {Op: x86.OpCmp, C: CodingGbEb},
	0x3b: {Op: x86.OpCmp, C: CodingGvEv},
	0x3c: {Op: x86.OpCmp, C: CodingALIb},
	0x3d: {Op: x86.OpCmp, C: CodingAXIz},
	0x3e: {C: CodingPrefix},
	0x3f: {Op: x86.OpAas, C: CodingNone},
	0x40: {Op: x86.OpInc, C: CodingPlusRegV},
	0x41: {Op: x86.OpInc, C: CodingPlusRegV},
	0x42: {Op: x86.OpInc, C: CodingPlusRegV},
	0x43: {Op: x86.OpInc, C: CodingPlusRegV},
	0x44: {Op: x86.OpInc, C: CodingPlusRegV},
	0x45: {Op: x86.OpInc, C: CodingPlusRegV},
	0x46: {Op: x86.OpInc, C: CodingPlusRegV},
	0x47: {Op: x86.OpInc, C: CodingPlusRegV},
	0x48: {Op: x86.OpDec, C: CodingPlusRegV},
	0x49: {Op: x86.OpDec, C: CodingPlusRegV},
	0x4a: {Op: x86.OpDec, C: CodingPlusRegV},
	0x4b: {Op: x86.OpDec, C: CodingPlusRegV},
	0x4c: {Op: x86.OpDec, C: CodingPlusRegV},
	0x4d: {Op: x86.OpDec, C: CodingPlusRegV},
	0x4e: {Op: x86.OpDec, C: CodingPlusRegV},
	0x4f: {Op: x86.OpDec, C: CodingPlusRegV},
	0x50: {Op: x86.OpPush, C: CodingPlusRegV},
	0x51: {Op: x86.OpPush, C: CodingPlusRegV},
	0x52: {Op: x86.OpPush, C: CodingPlusRegV},
	0x53: {Op: x86.OpPush, C: CodingPlusRegV},
	0x54: {Op: x86.OpPush, C: CodingPlusRegV},
	0x55: {Op: x86.OpPush, C: CodingPlusRegV},
	0x56: {Op: x86.OpPush, C: CodingPlusRegV},
	0x57: {Op: x86.OpPush, C: CodingPlusRegV},
	0x58: {Op: x86.OpPop, C: CodingPlusRegV},
	0x59: {Op: x86.OpPop, C: CodingPlusRegV},
	0x5a: {Op: x86.OpPop, C: CodingPlusRegV},
	0x5b: {Op: x86.OpPop, C: CodingPlusRegV},
	0x5c: {Op: x86.OpPop, C: CodingPlusRegV},
	0x5d: {Op: x86.OpPop, C: CodingPlusRegV},
	0x5e: {Op: x86.OpPop, C: CodingPlusRegV},
	0x5f: {Op: x86.OpPop, C: CodingPlusRegV},
	0x60: {Op: x86.OpPusha, C: CodingImplied},
	0x61: {Op: x86.OpPopa, C: CodingImplied},
	0x62: {Op: x86.OpBound, C: CodingGvMa},
	0x63: {Op: x86.OpArpl, C: CodingEwGw},
	0x64: {C: CodingPrefix},
	0x65: {C: CodingPrefix},
	0x66: {C: CodingPrefix},
	0x67: {C: CodingPrefix},
	0x68: {Op: x86.OpPush, C: CodingIz},
	0x69: {Op: x86.OpImul, C: CodingGvEvIz},
	0x6a: {Op: x86.OpPush, C: CodingIb},
	0x6b: {Op: x86.OpImul, C: CodingGvEvIb},
	0x6c: {Op: x86.OpIns, C: CodingStringB},
	0x6d: {Op: x86.OpIns, C: CodingStringV},
	0x6e: {Op: x86.OpOuts, C: CodingStringB},
	0x6f: {Op: x86.OpOuts, C: CodingStringV},
	0x70: {Op: x86.OpJo, C: CodingJb},
	0x71: {Op: x86.OpJno, C: CodingJb},
	0x72: {Op: x86.OpJb, C: CodingJb},
	0x73: {Op: x86.OpJae, C: CodingJb},
	0x74: {Op: x86.OpJz, C: CodingJb},
	0x75: {Op: x86.OpJnz, C: CodingJb},
	0x76: {Op: x86.OpJbe, C: CodingJb},
	0x77: {Op: x86.OpJa, C: CodingJb},
	0x78: {Op: x86.OpJs, C: CodingJb},
	0x79: {Op: x86.OpJns, C: CodingJb},
	0x7a: {Op: x86.OpJp, C: CodingJb},
	0x7b: {Op: x86.OpJnp, C: CodingJb},
	0x7c: {Op: x86.OpJl, C: CodingJb},
	0x7d: {Op: x86.OpJge, C: CodingJb},
	0x7e: {Op: x86.OpJle, C: CodingJb},
	0x7f: {Op: x86.OpJg, C: CodingJb},
	0x80: {C: CodingGroup, Arg: Group1EbIb},
	0x81: {C: CodingGroup, Arg: Group1EvIz},
	0x82: {C: CodingGroup, Arg: Group1EbIb}, // legacy alias of 0x80
	0x83: {C: CodingGroup, Arg: Group1EvIb},
	0x84: {Op: x86.OpTest, C: CodingEbGb},
	0x85: {Op: x86.OpTest, C: CodingEvGv},
	0x86: {Op: x86.OpXchg, C: CodingEbGb},
	0x87: {Op: x86.OpXchg, C: CodingEvGv},
	0x88: {Op: x86.OpMov, C: CodingEbGb},
	0x89: {Op: x86.OpMov, C: CodingEvGv},
	0x8a: {Op: x86.OpMov, C: CodingGbEb},
	0x8b: {Op: x86.OpMov, C: CodingGvEv},
	0x8c: {Op: x86.OpMov, C: CodingEvSw},
	0x8d: {Op: x86.OpLea, C: CodingGvM},
	0x8e: {Op: x86.OpMov, C: CodingSwEw},
	0x8f: {C: CodingGroup, Arg: GroupPop},
	0x90: {Op: x86.OpNop, C: CodingNone},
	0x91: {Op: x86.OpXchg, C: CodingPlusRegXchg},
	0x92: {Op: x86.OpXchg, C: CodingPlusRegXchg},
	0x93: {Op: x86.OpXchg, C: CodingPlusRegXchg},
	0x94: {Op: x86.OpXchg, C: CodingPlusRegXchg},
	0x95: {Op: x86.OpXchg, C: CodingPlusRegXchg},
	0x96: {Op: x86.OpXchg, C: CodingPlusRegXchg},
	0x97: {Op: x86.OpXchg, C: CodingPlusRegXchg},
	0x98: {Op: x86.OpCbw, C: CodingImplied},
	0x99: {Op: x86.OpCwd, C: CodingImplied},
	0x9a: {Op: x86.OpCallf, C: CodingAp},
	0x9b: {Op: x86.OpWait, C: CodingNone},
	0x9c: {Op: x86.OpPushf, C: CodingImplied},
	0x9d: {Op: x86.OpPopf, C: CodingImplied},
	0x9e: {Op: x86.OpSahf, C: CodingNone},
	0x9f: {Op: x86.OpLahf, C: CodingNone},
	0xa0: {Op: x86.OpMov, C: CodingALOb},
	0xa1: {Op: x86.OpMov, C: CodingAXOv},
	0xa2: {Op: x86.OpMov, C: CodingObAL},
	0xa3: {Op: x86.OpMov, C: CodingOvAX},
	0xa4: {Op: x86.OpMovs, C: CodingStringB},
	0xa5: {Op: x86.OpMovs, C: CodingStringV},
	0xa6: {Op: x86.OpCmps, C: CodingStringB},
	0xa7: {Op: x86.OpCmps, C: CodingStringV},
	0xa8: {Op: x86.OpTest, C: CodingALIb},
	0xa9: {Op: x86.OpTest, C: CodingAXIz},
	0xaa: {Op: x86.OpStos, C: CodingStringB},
	0xab: {Op: x86.OpStos, C: CodingStringV},
	0xac: {Op: x86.OpLods, C: CodingStringB},
	0xad: {Op: x86.OpLods, C: CodingStringV},
	0xae: {Op: x86.OpScas, C: CodingStringB},
	0xaf: {Op: x86.OpScas, C: CodingStringV},
	0xb0: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb1: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb2: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb3: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb4: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb5: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb6: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb7: {Op: x86.OpMov, C: CodingPlusRegIb},
	0xb8: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xb9: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xba: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xbb: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xbc: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xbd: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xbe: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xbf: {Op: x86.OpMov, C: CodingPlusRegIv},
	0xc0: {C: CodingGroup, Arg: GroupShiftEbIb},
	0xc1: {C: CodingGroup, Arg: GroupShiftEvIb},
	0xc2: {Op: x86.OpRet, C: CodingIw},
	0xc3: {Op: x86.OpRet, C: CodingNone},
	0xc4: {Op: x86.OpLes, C: CodingGvMp},
	0xc5: {Op: x86.OpLds, C: CodingGvMp},
	0xc6: {C: CodingGroup, Arg: Group11Eb},
	0xc7: {C: CodingGroup, Arg: Group11Ev},
	0xc8: {Op: x86.OpEnter, C: CodingIwIb},
	0xc9: {Op: x86.OpLeave, C: CodingNone},
	0xca: {Op: x86.OpRetf, C: CodingIw},
	0xcb: {Op: x86.OpRetf, C: CodingNone},
	0xcc: {Op: x86.OpInt3, C: CodingNone},
	0xcd: {Op: x86.OpInt, C: CodingIb},
	0xce: {Op: x86.OpInto, C: CodingNone},
	0xcf: {Op: x86.OpIret, C: CodingNone},
	0xd0: {C: CodingGroup, Arg: GroupShiftEb1},
	0xd1: {C: CodingGroup, Arg: GroupShiftEv1},
	0xd2: {C: CodingGroup, Arg: GroupShiftEbCL},
	0xd3: {C: CodingGroup, Arg: GroupShiftEvCL},
	0xd4: {Op: x86.OpAam, C: CodingIb},
	0xd5: {Op: x86.OpAad, C: CodingIb},
	0xd6: {Op: x86.OpSalc, C: CodingNone},
	0xd7: {Op: x86.OpXlat, C: CodingImplied},
	// 0xd8 to 0xdf: x87 escape space, not decoded
	0xe0: {Op: x86.OpLoopnz, C: CodingJb},
	0xe1: {Op: x86.OpLoopz, C: CodingJb},
	0xe2: {Op: x86.OpLoop, C: CodingJb},
	0xe3: {Op: x86.OpJcxz, C: CodingJb},
	0xe4: {Op: x86.OpIn, C: CodingInALIb},
	0xe5: {Op: x86.OpIn, C: CodingInAXIb},
	0xe6: {Op: x86.OpOut, C: CodingOutIbAL},
	0xe7: {Op: x86.OpOut, C: CodingOutIbAX},
	0xe8: {Op: x86.OpCall, C: CodingJz},
	0xe9: {Op: x86.OpJmp, C: CodingJz},
	0xea: {Op: x86.OpJmpf, C: CodingAp},
	0xeb: {Op: x86.OpJmp, C: CodingJb},
	0xec: {Op: x86.OpIn, C: CodingInALDX},
	0xed: {Op: x86.OpIn, C: CodingInAXDX},
	0xee: {Op: x86.OpOut, C: CodingOutDXAL},
	0xef: {Op: x86.OpOut, C: CodingOutDXAX},
	0xf0: {C: CodingPrefix},
	0xf1: {Op: x86.OpInt1, C: CodingNone},
	0xf2: {C: CodingPrefix},
	0xf3: {C: CodingPrefix},
	0xf4: {Op: x86.OpHlt, C: CodingNone},
	0xf5: {Op: x86.OpCmc, C: CodingNone},
	0xf6: {C: CodingGroup, Arg: Group3Eb},
	0xf7: {C: CodingGroup, Arg: Group3Ev},
	0xf8: {Op: x86.OpClc, C: CodingNone},
	0xf9: {Op: x86.OpStc, C: CodingNone},
	0xfa: {Op: x86.OpCli, C: CodingNone},
	0xfb: {Op: x86.OpSti, C: CodingNone},
	0xfc: {Op: x86.OpCld, C: CodingNone},
	0xfd: {Op: x86.OpStd, C: CodingNone},
	0xfe: {C: CodingGroup, Arg: Group4},
	0xff: {C: CodingGroup, Arg: Group5},
}

// TwoByte is the secondary opcode map reached through the 0x0f escape
// byte, restricted to the instruction subset the decoders implement.
// Unlisted slots decode as invalid opcode. Long mode patches the fast
// system call slots.
var TwoByte = [256]Entry{
	0x0b: {Op: x86.OpUd2, C: CodingNone},
	0x1f: {Op: x86.OpNop, C: CodingEv},
	0x30: {Op: x86.OpWrmsr, C: CodingNone},
	0x31: {Op: x86.OpRdtsc, C: CodingNone},
	0x32: {Op: x86.OpRdmsr, C: CodingNone},
	0x34: {Op: x86.OpSysenter, C: CodingNone},
	0x35: {Op: x86.OpSysexit, C: CodingNone},
	0x40: {Op: x86.OpCmovo, C: CodingGvEv},
	0x41: {Op: x86.OpCmovno, C: CodingGvEv},
	0x42: {Op: x86.OpCmovb, C: CodingGvEv},
	0x43: {Op: x86.OpCmovae, C: CodingGvEv},
	0x44: {Op: x86.OpCmovz, C: CodingGvEv},
	0x45: {Op: x86.OpCmovnz, C: CodingGvEv},
	0x46: {Op: x86.OpCmovbe, C: CodingGvEv},
	0x47: {Op: x86.OpCmova, C: CodingGvEv},
	0x48: {Op: x86.OpCmovs, C: CodingGvEv},
	0x49: {Op: x86.OpCmovns, C: CodingGvEv},
	0x4a: {Op: x86.OpCmovp, C: CodingGvEv},
	0x4b: {Op: x86.OpCmovnp, C: CodingGvEv},
	0x4c: {Op: x86.OpCmovl, C: CodingGvEv},
	0x4d: {Op: x86.OpCmovge, C: CodingGvEv},
	0x4e: {Op: x86.OpCmovle, C: CodingGvEv},
	0x4f: {Op: x86.OpCmovg, C: CodingGvEv},
	0x80: {Op: x86.OpJo, C: CodingJz},
	0x81: {Op: x86.OpJno, C: CodingJz},
	0x82: {Op: x86.OpJb, C: CodingJz},
	0x83: {Op: x86.OpJae, C: CodingJz},
	0x84: {Op: x86.OpJz, C: CodingJz},
	0x85: {Op: x86.OpJnz, C: CodingJz},
	0x86: {Op: x86.OpJbe, C: CodingJz},
	0x87: {Op: x86.OpJa, C: CodingJz},
	0x88: {Op: x86.OpJs, C: CodingJz},
	0x89: {Op: x86.OpJns, C: CodingJz},
	0x8a: {Op: x86.OpJp, C: CodingJz},
	0x8b: {Op: x86.OpJnp, C: CodingJz},
	0x8c: {Op: x86.OpJl, C: CodingJz},
	0x8d: {Op: x86.OpJge, C: CodingJz},
	0x8e: {Op: x86.OpJle, C: CodingJz},
	0x8f: {Op: x86.OpJg, C: CodingJz},
	0x90: {Op: x86.OpSeto, C: CodingEb},
	0x91: {Op: x86.OpSetno, C: CodingEb},
	0x92: {Op: x86.OpSetb, C: CodingEb},
	0x93: {Op: x86.OpSetae, C: CodingEb},
	0x94: {Op: x86.OpSetz, C: CodingEb},
	0x95: {Op: x86.OpSetnz, C: CodingEb},
	0x96: {Op: x86.OpSetbe, C: CodingEb},
	0x97: {Op: x86.OpSeta, C: CodingEb},
	0x98: {Op: x86.OpSets, C: CodingEb},
	0x99: {Op: x86.OpSetns, C: CodingEb},
	0x9a: {Op: x86.OpSetp, C: CodingEb},
	0x9b: {Op: x86.OpSetnp, C: CodingEb},
	0x9c: {Op: x86.OpSetl, C: CodingEb},
	0x9d: {Op: x86.OpSetge, C: CodingEb},
	0x9e: {Op: x86.OpSetle, C: CodingEb},
	0x9f: {Op: x86.OpSetg, C: CodingEb},
	0xa0: {Op: x86.OpPush, C: CodingSegReg, Arg: uint8(x86.FS)},
	0xa1: {Op: x86.OpPop, C: CodingSegReg, Arg: uint8(x86.FS)},
	0xa2: {Op: x86.OpCpuid, C: CodingNone},
	0xa3: {Op: x86.OpBt, C: CodingEvGv},
	0xa4: {Op: x86.OpShld, C: CodingEvGvIb},
	0xa5: {Op: x86.OpShld, C: CodingEvGvCL},
	0xa8: {Op: x86.OpPush, C: CodingSegReg, Arg: uint8(x86.GS)},
	0xa9: {Op: x86.OpPop, C: CodingSegReg, Arg: uint8(x86.GS)},
	0xab: {Op: x86.OpBts, C: CodingEvGv},
	0xac: {Op: x86.OpShrd, C: CodingEvGvIb},
	0xad: {Op: x86.OpShrd, C: CodingEvGvCL},
	0xaf: {Op: x86.OpImul, C: CodingGvEv},
	0xb0: {Op: x86.OpCmpxchg, C: CodingEbGb},
	0xb1: {Op: x86.OpCmpxchg, C: CodingEvGv},
	0xb3: {Op: x86.OpBtr, C: CodingEvGv},
	0xb6: {Op: x86.OpMovzx, C: CodingGvEb},
	0xb7: {Op: x86.OpMovzx, C: CodingGvEw},
	0xba: {C: CodingGroup, Arg: Group8},
	0xbb: {Op: x86.OpBtc, C: CodingEvGv},
	0xbc: {Op: x86.OpBsf, C: CodingGvEv},
	0xbd: {Op: x86.OpBsr, C: CodingGvEv},
	0xbe: {Op: x86.OpMovsx, C: CodingGvEb},
	0xbf: {Op: x86.OpMovsx, C: CodingGvEw},
	0xc0: {Op: x86.OpXadd, C: CodingEbGb},
	0xc1: {Op: x86.OpXadd, C: CodingEvGv},
	0xc8: {Op: x86.OpBswap, C: CodingPlusRegV},
	0xc9: {Op: x86.OpBswap, C: CodingPlusRegV},
	0xca: {Op: x86.OpBswap, C: CodingPlusRegV},
	0xcb: {Op: x86.OpBswap, C: CodingPlusRegV},
	0xcc: {Op: x86.OpBswap, C: CodingPlusRegV},
	0xcd: {Op: x86.OpBswap, C: CodingPlusRegV},
	0xce: {Op: x86.OpBswap, C: CodingPlusRegV},
	0xcf: {Op: x86.OpBswap, C: CodingPlusRegV},
}
