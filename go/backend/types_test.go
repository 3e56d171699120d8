// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package backend

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/holiman/uint256"
)

func TestAddress_JSON_Encoding(t *testing.T) {
	tests := []struct {
		address Address
		json    string
	}{
		{Address{}, "\"0x0000000000000000000000000000000000000000\""},
		{Address{1}, "\"0x0100000000000000000000000000000000000000\""},
		{Address{0xAB}, "\"0xab00000000000000000000000000000000000000\""},
	}

	for _, test := range tests {
		encoded, err := json.Marshal(test.address)
		if err != nil {
			t.Fatalf("failed to encode into JSON: %v", err)
		}
		if want, got := test.json, string(encoded); want != got {
			t.Errorf("unexpected JSON encoding, wanted %v, got %v", want, got)
		}

		var restored Address
		if err := json.Unmarshal(encoded, &restored); err != nil {
			t.Fatalf("failed to restore address: %v", err)
		}
		if test.address != restored {
			t.Errorf("unexpected restored value, wanted %v, got %v", test.address, restored)
		}
	}
}

func TestAddress_Unmarshal_InvalidInput(t *testing.T) {
	tests := map[string]string{
		"no prefix":   "\"0000000000000000000000000000000000000000\"",
		"too short":   "\"0x00\"",
		"too long":    "\"0x000102030405060708090a0b0c0d0e0f1011121314\"",
		"not hex":     "\"0xz000000000000000000000000000000000000000\"",
		"not a quote": "0",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var address Address
			if err := json.Unmarshal([]byte(input), &address); err == nil {
				t.Errorf("expected decoding of %v to fail, but it did not", input)
			}
		})
	}
}

func TestCode_JSON_Encoding(t *testing.T) {
	tests := []struct {
		code Code
		json string
	}{
		{Code{}, "\"0x\""},
		{Code{0x60, 0x00}, "\"0x6000\""},
	}

	for _, test := range tests {
		encoded, err := json.Marshal(test.code)
		if err != nil {
			t.Fatalf("failed to encode into JSON: %v", err)
		}
		if want, got := test.json, string(encoded); want != got {
			t.Errorf("unexpected JSON encoding, wanted %v, got %v", want, got)
		}

		var restored Code
		if err := json.Unmarshal(encoded, &restored); err != nil {
			t.Fatalf("failed to restore code: %v", err)
		}
		if want, got := len(test.code), len(restored); want != got {
			t.Errorf("unexpected restored length, wanted %v, got %v", want, got)
		}
	}
}

func TestNewValue_ArgumentsAreOrderedFromMostToLeastSignificant(t *testing.T) {
	tests := []struct {
		args []uint64
		want Value
	}{
		{nil, Value{}},
		{[]uint64{1}, Value{31: 1}},
		{[]uint64{1, 2}, Value{23: 1, 31: 2}},
		{[]uint64{1, 2, 3}, Value{15: 1, 23: 2, 31: 3}},
		{[]uint64{1, 2, 3, 4}, Value{7: 1, 15: 2, 23: 3, 31: 4}},
	}

	for _, test := range tests {
		if want, got := test.want, NewValue(test.args...); want != got {
			t.Errorf("unexpected value, wanted %v, got %v", want, got)
		}
	}
}

func TestValue_Uint256Conversion_RoundTrips(t *testing.T) {
	tests := []*uint256.Int{
		uint256.NewInt(0),
		uint256.NewInt(1),
		uint256.NewInt(math.MaxUint64),
		new(uint256.Int).Lsh(uint256.NewInt(1), 128),
		new(uint256.Int).Not(uint256.NewInt(0)),
	}

	for _, test := range tests {
		restored := ValueFromUint256(test).ToUint256()
		if test.Cmp(restored) != 0 {
			t.Errorf("conversion altered value, wanted %v, got %v", test, restored)
		}
	}

	if want, got := (Value{}), ValueFromUint256(nil); want != got {
		t.Errorf("nil should convert to zero, got %v", got)
	}
}

func TestValue_AddAndSub_AreInverse(t *testing.T) {
	tests := []struct {
		a, b Value
	}{
		{NewValue(), NewValue()},
		{NewValue(1), NewValue(2)},
		{NewValue(math.MaxUint64), NewValue(1)},
		{NewValue(1, 0), NewValue(0, math.MaxUint64)},
		{NewValue(math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64), NewValue(1)},
	}

	for _, test := range tests {
		if want, got := test.a, Sub(Add(test.a, test.b), test.b); want != got {
			t.Errorf("Sub(Add(%v, %v)) = %v, wanted %v", test.a, test.b, got, want)
		}
	}
}

func TestValue_Add_CarriesAcrossWords(t *testing.T) {
	a := NewValue(0, 0, math.MaxUint64, math.MaxUint64)
	if want, got := NewValue(0, 1, 0, 0), Add(a, NewValue(1)); want != got {
		t.Errorf("unexpected sum, wanted %v, got %v", want, got)
	}
}

func TestValue_Cmp_OrdersNumerically(t *testing.T) {
	tests := []struct {
		a, b Value
		want int
	}{
		{NewValue(), NewValue(), 0},
		{NewValue(1), NewValue(2), -1},
		{NewValue(2), NewValue(1), 1},
		{NewValue(1, 0), NewValue(math.MaxUint64), 1},
	}

	for _, test := range tests {
		if want, got := test.want, test.a.Cmp(test.b); want != got {
			t.Errorf("Cmp(%v, %v) = %d, wanted %d", test.a, test.b, got, want)
		}
	}
}

func TestValue_Uint64_TruncatesToLowBits(t *testing.T) {
	tests := []struct {
		value Value
		want  uint64
	}{
		{NewValue(), 0},
		{NewValue(42), 42},
		{NewValue(1, 42), 42},
		{NewValue(math.MaxUint64), math.MaxUint64},
	}

	for _, test := range tests {
		if want, got := test.want, test.value.Uint64(); want != got {
			t.Errorf("unexpected low bits of %v, wanted %d, got %d", test.value, want, got)
		}
	}
}

func TestValue_IsZero(t *testing.T) {
	if !NewValue().IsZero() {
		t.Errorf("zero value not reported as zero")
	}
	if NewValue(1).IsZero() {
		t.Errorf("non-zero value reported as zero")
	}
	if NewValue(1, 0, 0, 0).IsZero() {
		t.Errorf("value with only high bits reported as zero")
	}
}
