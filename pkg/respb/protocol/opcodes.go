package protocol

// Named opcode constants for the handful of commands collaborator
// packages (workload generation, the bench harness) construct directly.
// The dispatch table itself is keyed by numeric literal in the table_*.go
// files — these constants exist purely so code outside this package never
// hardcodes a magic opcode value.
const (
	OpGet   Opcode = 0x0000
	OpSet   Opcode = 0x0001
	OpMGet  Opcode = 0x000C
	OpLPush Opcode = 0x0040
	OpHSet  Opcode = 0x0100
	OpZAdd  Opcode = 0x00C0
	OpDel   Opcode = 0x0300
	OpPing  Opcode = 0x0340
)
