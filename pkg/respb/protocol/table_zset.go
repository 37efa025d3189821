package protocol

// Sorted-set opcodes (0x00C0-0x00FF). ZADD uses the full grammar described
// in spec §9's correction of the reference's short-cut (scan a flags byte,
// then a u16 count of (score:fixed(8), member:short_string) pairs) rather
// than the reference's key-only shortcut.
func init() {
	register(0x00C0, "ZADD", gZAdd)
	register(0x00C1, "ZREM", gListPush)
	register(0x00C2, "ZSCORE", Grammar{shortStr(), shortStr()})
	register(0x00C3, "ZMSCORE", gListPush)
	register(0x00C4, "ZCARD", gSingleKey)
	register(0x00C5, "ZCOUNT", Grammar{shortStr(), fixed(8), fixed(8)})
	register(0x00C6, "ZINCRBY", Grammar{shortStr(), fixed(8), shortStr()})
	register(0x00C7, "ZRANK", Grammar{shortStr(), shortStr()})
	register(0x00C8, "ZREVRANK", Grammar{shortStr(), shortStr()})
	register(0x00C9, "ZRANGE", gRangeOp)
	register(0x00CA, "ZREVRANGE", gRangeOp)
	register(0x00CB, "ZRANGEBYSCORE", gRangeOp)
	register(0x00CC, "ZREVRANGEBYSCORE", gRangeOp)
	register(0x00CD, "ZRANGEBYLEX", gRangeOp)
	register(0x00CE, "ZREVRANGEBYLEX", gRangeOp)
	register(0x00CF, "ZLEXCOUNT", gRangeOp)
	register(0x00D0, "ZREMRANGEBYSCORE", gRangeOp)
	register(0x00D1, "ZREMRANGEBYRANK", gRangeOp)
	register(0x00D2, "ZREMRANGEBYLEX", gRangeOp)
	register(0x00D3, "ZPOPMIN", gSingleKeyOptionalCount)
	register(0x00D4, "ZPOPMAX", gSingleKeyOptionalCount)
	register(0x00D5, "ZRANDMEMBER", gSingleKeyOptionalCount)
	register(0x00D6, "ZUNIONSTORE", Grammar{shortStr(), countThen(shortStr())})
	register(0x00D7, "ZINTERSTORE", Grammar{shortStr(), countThen(shortStr())})
	register(0x00D8, "ZDIFFSTORE", Grammar{shortStr(), countThen(shortStr())})
	register(0x00D9, "ZDIFF", gMultiKeyRead)
	register(0x00DA, "ZUNION", gMultiKeyRead)
	register(0x00DB, "ZINTER", gMultiKeyRead)
	register(0x00DC, "ZINTERCARD", gMultiKeyRead)
	register(0x00DD, "ZMPOP", gMultiKeyRead)
}
