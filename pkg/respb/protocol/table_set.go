package protocol

// Set-family opcodes (0x0080-0x00BF).
func init() {
	register(0x0080, "SADD", gListPush)
	register(0x0081, "SREM", gListPush)
	register(0x0082, "SISMEMBER", Grammar{shortStr(), shortStr()})
	register(0x0083, "SMISMEMBER", gListPush)
	register(0x0084, "SCARD", gSingleKey)
	register(0x0085, "SMEMBERS", gSingleKey)
	register(0x0086, "SPOP", gSingleKeyOptionalCount)
	register(0x0087, "SRANDMEMBER", gSingleKeyOptionalCount)
	register(0x0088, "SMOVE", Grammar{shortStr(), shortStr(), shortStr()})
	register(0x0089, "SINTER", gMultiKeyRead)
	register(0x008A, "SINTERSTORE", Grammar{shortStr(), countThen(shortStr())})
	register(0x008B, "SINTERCARD", gMultiKeyRead)
	register(0x008C, "SUNION", gMultiKeyRead)
	register(0x008D, "SUNIONSTORE", Grammar{shortStr(), countThen(shortStr())})
	register(0x008E, "SDIFF", gMultiKeyRead)
	register(0x008F, "SDIFFSTORE", Grammar{shortStr(), countThen(shortStr())})
}
