package protocol

// Stream opcodes (0x0200-0x023F). Consumer-group, read, and trim option
// shapes are nontrivial (field filters, ID ranges, blocking timeouts); per
// spec §9's guidance for nontrivial option-flag commands, these surface
// only the stream key and carry the remainder opaque. XRANGE/XREVRANGE
// use the fixed start/stop range grammar.
func init() {
	register(0x0200, "XADD", Grammar{shortStr(), shortStr(), countThen(shortStr(), longStr())})
	register(0x0201, "XLEN", gSingleKey)
	register(0x0202, "XRANGE", gRangeOp)
	register(0x0203, "XREVRANGE", gRangeOp)
	register(0x0204, "XREAD", gKeyRest)
	register(0x0205, "XREADGROUP", gKeyRest)
	register(0x0206, "XDEL", gListPush)
	register(0x0207, "XTRIM", gKeyRest)
	register(0x0208, "XGROUP", gKeyRest)
	register(0x0209, "XACK", Grammar{shortStr(), shortStr(), countThen(shortStr())})
	register(0x020A, "XCLAIM", gKeyRest)
	register(0x020B, "XAUTOCLAIM", gKeyRest)
	register(0x020C, "XPENDING", gKeyRest)
	register(0x020D, "XINFO", gKeyRest)
	register(0x020E, "XSETID", Grammar{shortStr(), shortStr()})
}
