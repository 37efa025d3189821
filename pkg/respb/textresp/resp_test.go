package textresp

import (
	"bytes"
	"testing"
)

func TestParseCommandMultibulk(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{
			name: "SET foo bar",
			in:   []byte("*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n"),
			want: []string{"SET", "foo", "bar"},
		},
		{
			name: "single PING",
			in:   []byte("*1\r\n$4\r\nPING\r\n"),
			want: []string{"PING"},
		},
		{
			name: "empty array",
			in:   []byte("*0\r\n"),
			want: []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCommand(tc.in)
			if err != nil {
				t.Fatalf("ParseCommand: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("argc = %d, want %d", len(got), len(tc.want))
			}
			for i, w := range tc.want {
				if string(got[i]) != w {
					t.Errorf("arg[%d] = %q, want %q", i, got[i], w)
				}
			}
		})
	}
}

func TestParseCommandRejectsNonArray(t *testing.T) {
	if _, err := ParseCommand([]byte("+OK\r\n")); err == nil {
		t.Fatal("expected error for non-array input")
	}
}

func TestValueMarshalRoundTrip(t *testing.T) {
	v := Value{Type: typeArray, Array: []Value{
		{Type: typeBulk, Bulk: []byte("GET")},
		{Type: typeBulk, Bulk: []byte("mykey")},
	}}
	encoded := v.Marshal()

	r := NewReader(bytes.NewReader(encoded))
	got, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Array) != 2 || string(got.Array[0].Bulk) != "GET" || string(got.Array[1].Bulk) != "mykey" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestWriterWritesError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(Value{Type: typeError, Str: "ERR protocol error"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "-ERR protocol error\r\n" {
		t.Fatalf("got %q", buf.String())
	}
}
