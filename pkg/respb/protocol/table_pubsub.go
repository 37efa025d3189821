package protocol

// Pub/sub, transaction, and scripting opcodes (0x0240-0x02FF). Channel
// lists and WATCH keys are surfaced as key lists, PUBLISH/SPUBLISH as
// channel plus message, and the remaining transaction commands carry no
// payload. PUBSUB and the scripting commands surface at most the leading
// script-identifier field and carry the rest opaque via gKeyRest/gRestOnly
// so round-trip still holds.
func init() {
	// Pub/sub (0x0240-0x027F)
	register(0x0240, "SUBSCRIBE", gMultiKeyRead)
	register(0x0241, "UNSUBSCRIBE", gMultiKeyRead)
	register(0x0242, "PSUBSCRIBE", gMultiKeyRead)
	register(0x0243, "PUNSUBSCRIBE", gMultiKeyRead)
	register(0x0244, "PUBLISH", Grammar{shortStr(), longStr()})
	register(0x0245, "PUBSUB", gRestOnly)
	register(0x0246, "SSUBSCRIBE", gMultiKeyRead)
	register(0x0247, "SUNSUBSCRIBE", gMultiKeyRead)
	register(0x0248, "SPUBLISH", Grammar{shortStr(), longStr()})

	// Transactions (0x0280-0x02BF)
	register(0x0280, "MULTI", gNoArgs)
	register(0x0281, "EXEC", gNoArgs)
	register(0x0282, "DISCARD", gNoArgs)
	register(0x0283, "WATCH", gMultiKeyRead)
	register(0x0284, "UNWATCH", gNoArgs)

	// Scripting (0x02C0-0x02FF)
	register(0x02C0, "EVAL", gKeyRest)
	register(0x02C1, "EVALSHA", gKeyRest)
	register(0x02C2, "EVAL_RO", gKeyRest)
	register(0x02C3, "EVALSHA_RO", gKeyRest)
	register(0x02C4, "SCRIPT", gRestOnly)
	register(0x02C5, "FCALL", gKeyRest)
	register(0x02C6, "FCALL_RO", gKeyRest)
	register(0x02C7, "FUNCTION", gRestOnly)
}
