package protocol

// String-family opcodes (0x0000-0x003F). GET/SET and friends dominate the
// hot path of any Redis-compatible workload, so this range is populated
// densely relative to the others.
func init() {
	register(0x0000, "GET", gSingleKey)
	register(0x0001, "SET", gKeyValueWrite)
	register(0x0002, "GETSET", gKeyValueWrite)
	register(0x0003, "GETDEL", gSingleKey)
	register(0x0004, "GETEX", gSingleKeyOptionalExpiry)
	register(0x0005, "APPEND", Grammar{shortStr(), longStr()})
	register(0x0006, "STRLEN", gSingleKey)
	register(0x0007, "INCR", gSingleKey)
	register(0x0008, "DECR", gSingleKey)
	register(0x0009, "INCRBY", gSingleKeyInt)
	register(0x000A, "DECRBY", gSingleKeyInt)
	register(0x000B, "INCRBYFLOAT", Grammar{shortStr(), fixed(8)})
	register(0x000C, "MGET", gMultiKeyRead)
	register(0x000D, "MSET", gMultiPairWrite)
	register(0x000E, "MSETNX", gMultiPairWrite)
	register(0x000F, "SETNX", Grammar{shortStr(), longStr()})
	register(0x0010, "SETRANGE", Grammar{shortStr(), fixed(8), longStr()})
	register(0x0011, "GETRANGE", gRangeOp)
	register(0x0012, "SUBSTR", gRangeOp)
	register(0x0013, "SETEX", Grammar{shortStr(), fixed(8), longStr()})
	register(0x0014, "PSETEX", Grammar{shortStr(), fixed(8), longStr()})
	register(0x0015, "LCS", gTwoKeyOp)
}
