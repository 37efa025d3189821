package textresp

import (
	"bytes"
	"fmt"
)

// ParseCommand implements the narrow contract spec §6 assigns to the
// external text-RESP parser: "given a byte slice beginning with '*',
// produce an argument vector." It is the function a caller invokes on the
// RESPData slice handed back by a RESPB passthrough ParsedCommand.
//
// Unlike Reader, which parses any RESP Value, ParseCommand only accepts
// the multibulk-command shape `*N\r\n($L\r\n<bytes>\r\n){N}` and returns
// an error for a non-array value or a non-bulk element, matching the
// grammar spec §6 quotes verbatim: `"*" <ascii-uint> "\r\n" ( "$" <ascii-uint> "\r\n" <bytes> "\r\n" ){N}`.
// A null array (`*-1`) yields an empty vector, a null bulk element
// (`$-1`) yields a nil argument, and bytes after the array are not
// examined.
func ParseCommand(data []byte) ([][]byte, error) {
	r := NewReader(bytes.NewReader(data))
	v, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("textresp: %w", err)
	}
	if v.Type != typeArray {
		return nil, fmt.Errorf("textresp: expected multibulk array, got marker 0x%02X", v.Type)
	}
	args := make([][]byte, len(v.Array))
	for i, elem := range v.Array {
		if elem.Type != typeBulk {
			return nil, fmt.Errorf("textresp: expected bulk string element %d, got marker 0x%02X", i, elem.Type)
		}
		args[i] = elem.Bulk
	}
	return args, nil
}
