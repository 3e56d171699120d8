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

import "testing"

func TestEmptyCodeHash_IsTheWellKnownConstant(t *testing.T) {
	want := "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if got := EmptyCodeHash.String(); want != got {
		t.Errorf("unexpected hash of empty code, wanted %v, got %v", want, got)
	}
}

func TestHashCode_EmptyAndNilCodeHashTheSame(t *testing.T) {
	if want, got := HashCode(nil), HashCode(Code{}); want != got {
		t.Errorf("nil and empty code must hash equally, got %v and %v", want, got)
	}
}

func TestHashCode_DistinguishesCode(t *testing.T) {
	if HashCode(Code{0x60, 0x00}) == HashCode(Code{0x60, 0x01}) {
		t.Errorf("different codes must not collide on their hash")
	}
	if HashCode(Code{0x00}) == EmptyCodeHash {
		t.Errorf("non-empty code must not hash to the empty-code hash")
	}
}
