package huffman

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestWriteContainer(t *testing.T) {
	result, err := Compress(ParseSequence("AAAA"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := WriteContainer(&buf, result.Codes, result.Stream)
	if err != nil {
		t.Fatalf("WriteContainer failed: %v", err)
	}

	expectBytes := []byte{
		0x00, 0x00, 0x00, 0x04, // symbol count
		0x00, 0x01, // entries
		0x41, 0x01, // 'A', 1 bit
		0x00, // code "0" + padding
		0x04, // payload padding
		0x00, // payload "0000" + padding
	}
	actualBytes := buf.Bytes()
	if !bytes.Equal(expectBytes, actualBytes) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expectBytes, actualBytes)
	}
	if n != int64(len(expectBytes)) {
		t.Errorf("expected %d bytes written, got %d", len(expectBytes), n)
	}
}

func TestContainer_RoundTrip(t *testing.T) {
	for _, str := range []string{"", "A", "AAACGT", testDNA} {
		t.Run(str[:minInt(len(str), 8)], func(t *testing.T) {
			seq := ParseSequence(str)

			ct := CodeTable{}
			es := EncodedStream{}
			if len(seq) != 0 {
				result, err := Compress(seq)
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}
				ct, es = result.Codes, result.Stream
			}

			var buf bytes.Buffer
			if _, err := WriteContainer(&buf, ct, es); err != nil {
				t.Fatalf("WriteContainer failed: %v", err)
			}

			ct2, es2, err := ReadContainer(&buf)
			if err != nil {
				t.Fatalf("ReadContainer failed: %v", err)
			}
			if !reflect.DeepEqual(ct, ct2) {
				t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", ct, ct2)
			}
			if es2.BitLen != es.BitLen || es2.Count != es.Count {
				t.Errorf("expected %d bits for %d symbols, got %d bits for %d symbols", es.BitLen, es.Count, es2.BitLen, es2.Count)
			}
			if es2.String() != es.String() {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", es, es2)
			}

			if len(seq) == 0 {
				return
			}
			tree, err := NewTreeFromCodeTable(ct2)
			if err != nil {
				t.Fatalf("NewTreeFromCodeTable failed: %v", err)
			}
			out, err := Decode(es2, tree)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !out.Equal(seq) {
				t.Errorf("decoded sequence differs from input")
			}
		})
	}
}

func TestContainer_UnknownCount(t *testing.T) {
	es, err := ParseBits("0110", UnknownCount)
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}

	var buf bytes.Buffer
	if _, err := WriteContainer(&buf, CodeTable{'A': MakeCode(1, 0), 'C': MakeCode(1, 1)}, es); err != nil {
		t.Fatalf("WriteContainer failed: %v", err)
	}
	_, es2, err := ReadContainer(&buf)
	if err != nil {
		t.Fatalf("ReadContainer failed: %v", err)
	}
	if es2.Count != UnknownCount {
		t.Errorf("expected UnknownCount, got %d", es2.Count)
	}
}

func TestReadContainer_Errors(t *testing.T) {
	type testRow struct {
		name string
		data []byte
	}

	testData := [...]testRow{
		{name: "Empty", data: nil},
		{name: "ShortHeader", data: []byte{0x00, 0x00, 0x00, 0x04, 0x00}},
		{name: "TooManyEntries", data: []byte{0x00, 0x00, 0x00, 0x04, 0x01, 0x01}},
		{name: "ShortEntry", data: []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x01, 0x41}},
		{name: "EmptyCode", data: []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x01, 0x41, 0x00, 0x00, 0x00}},
		{name: "DuplicateSymbol", data: []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x02, 0x41, 0x01, 0x20, 0x80, 0x80, 0x00, 0x00}},
		{name: "MissingPadding", data: []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x01, 0x41, 0x01, 0x00}},
		{name: "PadTooLarge", data: []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x01, 0x41, 0x01, 0x00, 0x08, 0x00}},
		{name: "PadWithoutPayload", data: []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x01, 0x41, 0x01, 0x00, 0x04}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := ReadContainer(bytes.NewReader(row.data))
			if !errors.Is(err, ErrBadContainer) {
				t.Errorf("expected ErrBadContainer, got %v", err)
			}
		})
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
