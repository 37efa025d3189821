package protocol

import (
	"bytes"
	"testing"
)

func TestParseOneScenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		wantOut   Outcome
		wantOp    Opcode
		wantMux   uint16
		wantArgc  int
		wantArgs  []string
		wantOff   int
	}{
		{
			name:     "simple GET",
			input:    []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 'm', 'y', 'k', 'e', 'y'},
			wantOut:  OutcomeComplete,
			wantOp:   0x0000,
			wantMux:  0,
			wantArgc: 1,
			wantArgs: []string{"mykey"},
			wantOff:  11,
		},
		{
			name: "SET with flags+expiry",
			input: append(append(
				[]byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x05, 'm', 'y', 'k', 'e', 'y', 0x00, 0x00, 0x00, 0x07, 'm', 'y', 'v', 'a', 'l', 'u', 'e'},
				make([]byte, 9)...), []byte{}...),
			wantOut:  OutcomeComplete,
			wantOp:   0x0001,
			wantMux:  0,
			wantArgc: 2,
			wantArgs: []string{"mykey", "myvalue"},
			wantOff:  31,
		},
		{
			name: "MGET of three keys",
			input: []byte{
				0x00, 0x0C, 0x00, 0x00,
				0x00, 0x03,
				0x00, 0x04, 'k', 'e', 'y', '1',
				0x00, 0x04, 'k', 'e', 'y', '2',
				0x00, 0x04, 'k', 'e', 'y', '3',
			},
			wantOut:  OutcomeComplete,
			wantOp:   0x000C,
			wantMux:  0,
			wantArgc: 3,
			wantArgs: []string{"key1", "key2", "key3"},
			wantOff:  24,
		},
		{
			name:    "truncation",
			input:   []byte{0x00, 0x00},
			wantOut: OutcomeIncomplete,
		},
		{
			name:    "unknown opcode",
			input:   []byte{0xBE, 0xEF, 0x00, 0x00},
			wantOut: OutcomeError,
		},
	}

	r := NewReader(ReaderOptions{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := r.ParseOne(tc.input, 0)
			if res.Outcome != tc.wantOut {
				t.Fatalf("outcome = %v, want %v (err=%v)", res.Outcome, tc.wantOut, res.Err)
			}
			if tc.wantOut != OutcomeComplete {
				return
			}
			pc := res.Command
			if pc.Opcode != tc.wantOp {
				t.Errorf("opcode = 0x%04X, want 0x%04X", pc.Opcode, tc.wantOp)
			}
			if pc.MuxID != tc.wantMux {
				t.Errorf("mux_id = %d, want %d", pc.MuxID, tc.wantMux)
			}
			if pc.Argc() != tc.wantArgc {
				t.Fatalf("argc = %d, want %d", pc.Argc(), tc.wantArgc)
			}
			for i, want := range tc.wantArgs {
				if got := string(pc.Arg(i)); got != want {
					t.Errorf("arg[%d] = %q, want %q", i, got, want)
				}
			}
			if res.NewOffset != tc.wantOff {
				t.Errorf("new offset = %d, want %d", res.NewOffset, tc.wantOff)
			}
		})
	}
}

func TestParseOneJSONSetModuleFrame(t *testing.T) {
	input := []byte{
		0xF0, 0x00, 0x00, 0x00, // opcode, mux_id
		0x00, 0x00, 0x00, 0x00, // module_id=0, command_id=0 (JSON.SET)
		0x00, 0x07, 'p', 'r', 'o', 'f', 'i', 'l', 'e', // key
		0x00, 0x05, '.', 'n', 'a', 'm', 'e', // path
		0x00, 0x00, 0x00, 0x0A, '"', 'J', 'o', 'h', 'n', ' ', 'D', 'o', 'e', '"', // value (long_string)
		0x00, // flags
	}
	r := NewReader(ReaderOptions{})
	res := r.ParseOne(input, 0)
	if res.Outcome != OutcomeComplete {
		t.Fatalf("outcome = %v, want Complete (err=%v)", res.Outcome, res.Err)
	}
	pc := res.Command
	if pc.Opcode != OpcodeModule {
		t.Errorf("opcode = 0x%04X, want 0xF000", pc.Opcode)
	}
	if pc.ModuleID != 0 || pc.CommandID != 0 {
		t.Errorf("module/command = %d/%d, want 0/0", pc.ModuleID, pc.CommandID)
	}
	if pc.Argc() != 3 {
		t.Fatalf("argc = %d, want 3", pc.Argc())
	}
	wantArgs := []string{"profile", ".name", `"John Doe"`}
	for i, want := range wantArgs {
		if got := string(pc.Arg(i)); got != want {
			t.Errorf("arg[%d] = %q, want %q", i, got, want)
		}
	}
	if got := pc.RawTrailer(0); len(got) != 1 || got[0] != 0 {
		t.Errorf("flags trailer = %v, want [0]", got)
	}
}

func TestParseOnePassthrough(t *testing.T) {
	resp := []byte("*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n")
	input := append([]byte{0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, byte(len(resp))}, resp...)
	if len(resp) != 0x1F {
		t.Fatalf("test fixture resp length = %d, expected 31", len(resp))
	}

	r := NewReader(ReaderOptions{})
	res := r.ParseOne(input, 0)
	if res.Outcome != OutcomeComplete {
		t.Fatalf("outcome = %v, want Complete (err=%v)", res.Outcome, res.Err)
	}
	pc := res.Command
	if pc.Opcode != OpcodePassthrough {
		t.Errorf("opcode = 0x%04X, want 0xFFFF", pc.Opcode)
	}
	if pc.Argc() != 0 {
		t.Errorf("argc = %d, want 0", pc.Argc())
	}
	if pc.RESPLength != uint32(len(resp)) {
		t.Errorf("resp_length = %d, want %d", pc.RESPLength, len(resp))
	}
	if !bytes.Equal(pc.RESPData, resp) {
		t.Errorf("resp_data = %q, want %q", pc.RESPData, resp)
	}
}

// TestStreamingSafety checks spec §8 property 4: any prefix shorter than
// the full frame returns Incomplete without advancing the offset, the
// exact length returns Complete at that offset, and extra trailing bytes
// are left for the next call.
func TestStreamingSafety(t *testing.T) {
	full := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 'm', 'y', 'k', 'e', 'y'}
	r := NewReader(ReaderOptions{})

	for n := 0; n < len(full); n++ {
		res := r.ParseOne(full[:n], 0)
		if res.Outcome != OutcomeIncomplete {
			t.Fatalf("prefix length %d: outcome = %v, want Incomplete", n, res.Outcome)
		}
	}

	res := r.ParseOne(full, 0)
	if res.Outcome != OutcomeComplete || res.NewOffset != len(full) {
		t.Fatalf("full frame: outcome=%v offset=%d, want Complete at %d", res.Outcome, res.NewOffset, len(full))
	}

	extra := append(append([]byte{}, full...), 0xAA, 0xBB)
	res = r.ParseOne(extra, 0)
	if res.Outcome != OutcomeComplete || res.NewOffset != len(full) {
		t.Fatalf("frame with trailing bytes: outcome=%v offset=%d, want Complete at %d", res.Outcome, res.NewOffset, len(full))
	}
}

// TestOpcodePartitioning checks spec §8 property 5.
func TestOpcodePartitioning(t *testing.T) {
	r := NewReader(ReaderOptions{})

	for _, op := range []Opcode{0xF001, 0xF800, 0xFFFE} {
		buf := []byte{byte(op >> 8), byte(op), 0x00, 0x00}
		res := r.ParseOne(buf, 0)
		if res.Outcome != OutcomeError {
			t.Errorf("opcode 0x%04X: outcome = %v, want Error(UnknownOpcode)", op, res.Outcome)
		}
	}

	// 0xF000 requires 8 bytes minimum.
	res := r.ParseOne([]byte{0xF0, 0x00, 0x00, 0x00, 0x00, 0x00}, 0)
	if res.Outcome != OutcomeIncomplete {
		t.Errorf("module header truncated: outcome = %v, want Incomplete", res.Outcome)
	}

	// 0xFFFF requires 8 bytes plus resp_length trailing bytes.
	res = r.ParseOne([]byte{0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 'h', 'i'}, 0)
	if res.Outcome != OutcomeIncomplete {
		t.Errorf("passthrough truncated body: outcome = %v, want Incomplete", res.Outcome)
	}
}

// TestKeyRestOpaqueFrameExtent checks that a gKeyRest/gRestOnly opcode's
// rest-opaque field ends where its own length prefix says, not at the end
// of the caller's buffer. This exercises spec invariant §3.2.4: frame
// extent is determined purely by header + grammar + length prefixes.
func TestKeyRestOpaqueFrameExtent(t *testing.T) {
	// AUTH: [key:short_string, rest:length-prefixed opaque]
	authFrame := []byte{
		0x03, 0x44, 0x00, 0x00, // opcode AUTH, mux_id 0
		0x00, 0x04, 'u', 's', 'e', 'r', // key
		0x00, 0x00, 0x00, 0x08, 'p', 'a', 's', 's', 'w', 'o', 'r', 'd', // rest
	}

	r := NewReader(ReaderOptions{})

	t.Run("streaming safety", func(t *testing.T) {
		for n := 0; n < len(authFrame); n++ {
			res := r.ParseOne(authFrame[:n], 0)
			if res.Outcome != OutcomeIncomplete {
				t.Fatalf("prefix length %d: outcome = %v, want Incomplete", n, res.Outcome)
			}
		}
		res := r.ParseOne(authFrame, 0)
		if res.Outcome != OutcomeComplete || res.NewOffset != len(authFrame) {
			t.Fatalf("full frame: outcome=%v offset=%d, want Complete at %d", res.Outcome, res.NewOffset, len(authFrame))
		}
		if got := string(res.Command.Arg(0)); got != "user" {
			t.Errorf("key = %q, want user", got)
		}
		if got := res.Command.RawTrailer(0); string(got) != "password" {
			t.Errorf("rest trailer = %q, want password", got)
		}
	})

	t.Run("second frame in buffer is left untouched", func(t *testing.T) {
		// A second GET frame immediately follows AUTH in the same buffer,
		// exactly the shape a captured multi-frame session produces.
		getFrame := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 'm', 'y', 'k', 'e', 'y'}
		buf := append(append([]byte{}, authFrame...), getFrame...)

		res := r.ParseOne(buf, 0)
		if res.Outcome != OutcomeComplete {
			t.Fatalf("outcome = %v, want Complete (err=%v)", res.Outcome, res.Err)
		}
		if res.NewOffset != len(authFrame) {
			t.Fatalf("new offset = %d, want %d (AUTH frame must not swallow the following GET frame)", res.NewOffset, len(authFrame))
		}

		res = r.ParseOne(buf, res.NewOffset)
		if res.Outcome != OutcomeComplete {
			t.Fatalf("second frame outcome = %v, want Complete (err=%v)", res.Outcome, res.Err)
		}
		if res.Command.Opcode != 0x0000 {
			t.Errorf("second frame opcode = 0x%04X, want GET (0x0000)", res.Command.Opcode)
		}
		if got := string(res.Command.Arg(0)); got != "mykey" {
			t.Errorf("second frame key = %q, want mykey", got)
		}
		if res.NewOffset != len(buf) {
			t.Errorf("second frame new offset = %d, want %d", res.NewOffset, len(buf))
		}
	})
}

func TestZeroCopyArguments(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}
	r := NewReader(ReaderOptions{})
	res := r.ParseOne(buf, 0)
	if res.Outcome != OutcomeComplete {
		t.Fatalf("outcome = %v, want Complete", res.Outcome)
	}
	arg := res.Command.Arg(0)
	buf[6] = 'X'
	if arg[0] != 'X' {
		t.Fatalf("argument did not alias the input buffer: mutating buf did not change arg")
	}
}
