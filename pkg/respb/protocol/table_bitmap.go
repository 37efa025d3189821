package protocol

// Bitmap, HyperLogLog, and Geo opcodes (0x0140-0x01FF).
func init() {
	// Bitmaps (0x0140-0x017F)
	register(0x0140, "SETBIT", Grammar{shortStr(), fixed(8), fixed(1)})
	register(0x0141, "GETBIT", Grammar{shortStr(), fixed(8)})
	register(0x0142, "BITCOUNT", Grammar{shortStr(), optTrailing(17)})
	register(0x0143, "BITPOS", Grammar{shortStr(), fixed(1), optTrailing(16)})
	register(0x0144, "BITOP", Grammar{shortStr(), shortStr(), countThen(shortStr())})
	register(0x0145, "BITFIELD", gKeyRest)

	// HyperLogLog (0x0180-0x01BF)
	register(0x0180, "PFADD", gListPush)
	register(0x0181, "PFCOUNT", gMultiKeyRead)
	register(0x0182, "PFMERGE", Grammar{shortStr(), countThen(shortStr())})

	// Geo (0x01C0-0x01FF)
	register(0x01C0, "GEOADD", Grammar{shortStr(), countThen(fixed(16), shortStr())})
	register(0x01C1, "GEOPOS", gListPush)
	register(0x01C2, "GEODIST", Grammar{shortStr(), shortStr(), shortStr(), optTrailing(2)})
	register(0x01C3, "GEOHASH", gListPush)
	register(0x01C4, "GEOSEARCH", gKeyRest)
	register(0x01C5, "GEOSEARCHSTORE", gKeyRest)
}
