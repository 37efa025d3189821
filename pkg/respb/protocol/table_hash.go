package protocol

// Hash-family opcodes (0x0100-0x013F).
func init() {
	register(0x0100, "HSET", gHashWrite)
	register(0x0101, "HSETNX", Grammar{shortStr(), shortStr(), longStr()})
	register(0x0102, "HGET", Grammar{shortStr(), shortStr()})
	register(0x0103, "HMSET", gHashWrite)
	register(0x0104, "HMGET", gListPush)
	register(0x0105, "HDEL", gListPush)
	register(0x0106, "HLEN", gSingleKey)
	register(0x0107, "HEXISTS", Grammar{shortStr(), shortStr()})
	register(0x0108, "HKEYS", gSingleKey)
	register(0x0109, "HVALS", gSingleKey)
	register(0x010A, "HGETALL", gSingleKey)
	register(0x010B, "HINCRBY", Grammar{shortStr(), shortStr(), fixed(8)})
	register(0x010C, "HINCRBYFLOAT", Grammar{shortStr(), shortStr(), fixed(8)})
	register(0x010D, "HSTRLEN", Grammar{shortStr(), shortStr()})
	register(0x010E, "HRANDFIELD", gSingleKeyOptionalCount)
}
