package crypto

import (
	"bytes"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func TestParseHashFunction(t *testing.T) {
	tests := []struct {
		input    string
		expected HashFunction
		wantErr  bool
	}{
		{"blake3_192", Blake3_192, false},
		{"blake3_256", Blake3_256, false},
		{"SHA3_256", Sha3_256, false},
		{" blake2s_256 ", Blake2s_256, false},
		{"tip5", Tip5, false},
		{"rp64_256", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fn, err := ParseHashFunction(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHashFunction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if fn != tt.expected {
				t.Errorf("ParseHashFunction(%q) = %v, expected %v", tt.input, fn, tt.expected)
			}
		})
	}
}

func TestHashFunctionStringRoundTrip(t *testing.T) {
	for _, fn := range HashFunctions() {
		parsed, err := ParseHashFunction(fn.String())
		if err != nil {
			t.Fatalf("ParseHashFunction(%q) error = %v", fn.String(), err)
		}
		if parsed != fn {
			t.Errorf("ParseHashFunction(%q) = %v, expected %v", fn.String(), parsed, fn)
		}
	}
}

func TestResolve(t *testing.T) {
	expectedSizes := map[HashFunction]int{
		Blake3_192:  24,
		Blake3_256:  32,
		Sha3_256:    32,
		Blake2s_256: 32,
	}

	for _, fn := range HashFunctions() {
		t.Run(fn.String(), func(t *testing.T) {
			hasher, err := Resolve(fn)
			if err != nil {
				t.Fatalf("Resolve(%v) error = %v", fn, err)
			}
			if hasher.Function() != fn {
				t.Errorf("Function() = %v, expected %v", hasher.Function(), fn)
			}
			if size, ok := expectedSizes[fn]; ok && hasher.DigestSize() != size {
				t.Errorf("DigestSize() = %d, expected %d", hasher.DigestSize(), size)
			}

			a := hasher.Hash([]byte("vybium"))
			b := hasher.Hash([]byte("vybium"))
			c := hasher.Hash([]byte("vybiun"))
			if len(a) != hasher.DigestSize() {
				t.Errorf("len(Hash()) = %d, expected %d", len(a), hasher.DigestSize())
			}
			if !bytes.Equal(a, b) {
				t.Error("Hash() is not deterministic")
			}
			if bytes.Equal(a, c) {
				t.Error("different inputs produced the same digest")
			}

			row := []field.Element{field.New(1), field.New(2)}
			swapped := []field.Element{field.New(2), field.New(1)}
			if bytes.Equal(hasher.HashElements(row), hasher.HashElements(swapped)) {
				t.Error("HashElements() ignores element order")
			}
			if len(hasher.Merge(a, c)) != hasher.DigestSize() {
				t.Errorf("len(Merge()) = %d, expected %d", len(hasher.Merge(a, c)), hasher.DigestSize())
			}
		})
	}

	if _, err := Resolve(HashFunction(99)); err == nil {
		t.Error("Resolve() accepted an unknown hash function")
	}
}

func TestElementsToBytes(t *testing.T) {
	got := ElementsToBytes([]field.Element{field.New(1), field.New(0x0102)})
	expected := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0x02, 0x01, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, expected) {
		t.Errorf("ElementsToBytes() = %x, expected %x", got, expected)
	}
}

func TestBytesToElementsInjective(t *testing.T) {
	a := bytesToElements([]byte{1, 0})
	b := bytesToElements([]byte{1})
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("unexpected encoding lengths %d, %d", len(a), len(b))
	}
	if a[0].Equal(b[0]) {
		t.Error("length prefix does not distinguish trailing zero bytes")
	}
}

func BenchmarkHashElements(b *testing.B) {
	row := []field.Element{field.New(1), field.New(2)}
	for _, fn := range HashFunctions() {
		hasher, _ := Resolve(fn)
		b.Run(fn.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				hasher.HashElements(row)
			}
		})
	}
}
