package unreal

import "testing"

func TestProbeFrame(t *testing.T) {
	tests := []struct {
		name string
		data string
		want frameStatus
	}{
		{"empty buffer", "", frameIncomplete},
		{"complete object", `{"status":"success"}`, frameComplete},
		{"complete with surrounding whitespace", "  {\"a\":1}\n", frameComplete},
		{"complete array", `[1,2,3]`, frameComplete},
		{"prefix of object", `{"status":"succ`, frameIncomplete},
		{"open brace only", `{`, frameIncomplete},
		{"nested prefix", `{"result":{"actors":[{"name":"A"}`, frameIncomplete},
		{"string missing close quote", `{"name":"Player`, frameIncomplete},
		{"bare garbage", `not json at all`, frameMalformed},
		{"trailing data after document", `{"a":1}{"b":2}`, frameMalformed},
		{"trailing garbage after document", `{"a":1}xyz`, frameMalformed},
		{"trailing whitespace only", `{"a":1}   `, frameComplete},
		{"malformed inside document", `{"a":,}`, frameMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := probeFrame([]byte(tt.data)); got != tt.want {
				t.Errorf("probeFrame(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestProbeFrame_SplitUTF8Rune(t *testing.T) {
	// "é" is two bytes; the buffer ends mid-rune, which must read as an
	// incomplete frame rather than malformed
	full := []byte(`{"name":"café"}`)
	cut := full[:len(full)-3] // drops the second byte of é, the quote, and the brace

	if got := probeFrame(cut); got != frameIncomplete {
		t.Errorf("probeFrame(split rune) = %v, want frameIncomplete", got)
	}
	if got := probeFrame(full); got != frameComplete {
		t.Errorf("probeFrame(full) = %v, want frameComplete", got)
	}
}

func TestProbeFrame_InvalidUTF8NotAtTail(t *testing.T) {
	// An invalid byte in the middle can never become valid by appending
	data := []byte{'{', 0xff, 0xfe, '}', ' ', ' ', ' ', ' '}
	if got := probeFrame(data); got != frameMalformed {
		t.Errorf("probeFrame(embedded invalid bytes) = %v, want frameMalformed", got)
	}
}
