package protocol

// List-family opcodes (0x0040-0x007F).
func init() {
	register(0x0040, "LPUSH", gListPush)
	register(0x0041, "RPUSH", gListPush)
	register(0x0042, "LPUSHX", gListPush)
	register(0x0043, "RPUSHX", gListPush)
	register(0x0044, "LPOP", gSingleKeyOptionalCount)
	register(0x0045, "RPOP", gSingleKeyOptionalCount)
	register(0x0046, "LLEN", gSingleKey)
	register(0x0047, "LRANGE", gRangeOp)
	register(0x0048, "LINDEX", gSingleKeyInt)
	register(0x0049, "LSET", Grammar{shortStr(), fixed(8), longStr()})
	register(0x004A, "LINSERT", Grammar{shortStr(), fixed(1), longStr(), longStr()})
	register(0x004B, "LREM", Grammar{shortStr(), fixed(8), longStr()})
	register(0x004C, "LTRIM", gRangeOp)
	register(0x004D, "RPOPLPUSH", gTwoKeyOp)
	register(0x004E, "LMOVE", Grammar{shortStr(), shortStr(), fixed(1), fixed(1)})
	register(0x004F, "LPOS", Grammar{shortStr(), longStr(), optTrailing(16)})
}
