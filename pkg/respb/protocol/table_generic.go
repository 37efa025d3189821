package protocol

// Generic-key, connection, cluster, and server opcodes (0x0300-0x03FF).
func init() {
	// Generic key (0x0300-0x033F)
	register(0x0300, "DEL", gMultiKeyRead)
	register(0x0301, "UNLINK", gMultiKeyRead)
	register(0x0302, "EXISTS", gMultiKeyRead)
	register(0x0303, "EXPIRE", gSingleKeyInt)
	register(0x0304, "PEXPIRE", gSingleKeyInt)
	register(0x0305, "EXPIREAT", gSingleKeyInt)
	register(0x0306, "PEXPIREAT", gSingleKeyInt)
	register(0x0307, "TTL", gSingleKey)
	register(0x0308, "PTTL", gSingleKey)
	register(0x0309, "PERSIST", gSingleKey)
	register(0x030A, "EXPIRETIME", gSingleKey)
	register(0x030B, "PEXPIRETIME", gSingleKey)
	register(0x030C, "RENAME", gTwoKeyOp)
	register(0x030D, "RENAMENX", gTwoKeyOp)
	register(0x030E, "COPY", gTwoKeyOp)
	register(0x030F, "MOVE", Grammar{shortStr(), fixed(8)})
	register(0x0310, "TYPE", gSingleKey)
	register(0x0311, "KEYS", gSingleKey)
	register(0x0312, "SCAN", Grammar{fixed(8), restOpaque()})
	register(0x0313, "RANDOMKEY", gNoArgs)
	register(0x0314, "TOUCH", gMultiKeyRead)
	register(0x0315, "DUMP", gSingleKey)
	register(0x0316, "RESTORE", Grammar{shortStr(), fixed(8), longStr()})
	register(0x0317, "OBJECT", gKeyRest)
	register(0x0318, "SORT", gKeyRest)
	register(0x0319, "WAIT", Grammar{fixed(8), fixed(8)})

	// Connection (0x0340-0x037F)
	register(0x0340, "PING", gNoArgs)
	register(0x0341, "ECHO", gSingleKey)
	register(0x0342, "SELECT", gSingleKeyInt)
	register(0x0343, "SWAPDB", Grammar{fixed(8), fixed(8)})
	register(0x0344, "AUTH", gKeyRest)
	register(0x0345, "HELLO", gRestOnly)
	register(0x0346, "QUIT", gNoArgs)
	register(0x0347, "RESET", gNoArgs)
	register(0x0348, "CLIENT", gRestOnly)

	// Cluster (0x0380-0x03BF)
	register(0x0380, "CLUSTER", gRestOnly)
	register(0x0381, "READONLY", gNoArgs)
	register(0x0382, "READWRITE", gNoArgs)
	register(0x0383, "ASKING", gNoArgs)

	// Server (0x03C0-0x03FF)
	register(0x03C0, "FLUSHDB", gRestOnly)
	register(0x03C1, "FLUSHALL", gRestOnly)
	register(0x03C2, "DBSIZE", gNoArgs)
	register(0x03C3, "INFO", gRestOnly)
	register(0x03C4, "CONFIG", gRestOnly)
	register(0x03C5, "COMMAND", gRestOnly)
	register(0x03C6, "LASTSAVE", gNoArgs)
	register(0x03C7, "SAVE", gNoArgs)
	register(0x03C8, "BGSAVE", gNoArgs)
	register(0x03C9, "BGREWRITEAOF", gNoArgs)
	register(0x03CA, "SHUTDOWN", gRestOnly)
	register(0x03CB, "TIME", gNoArgs)
	register(0x03CC, "SLOWLOG", gRestOnly)
	register(0x03CD, "LATENCY", gRestOnly)
	register(0x03CE, "MEMORY", gRestOnly)
	register(0x03CF, "DEBUG", gRestOnly)
	register(0x03D0, "REPLICAOF", gTwoKeyOp)
	register(0x03D1, "ACL", gRestOnly)
}
