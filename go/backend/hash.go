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

import "golang.org/x/crypto/sha3"

// EmptyCodeHash is the canonical hash of empty code, the keccak256 hash
// of the empty input. Backends report it for accounts without code; it is
// never recomputed by callers.
var EmptyCodeHash = HashCode(nil)

// HashCode computes the keccak256 hash of the given code.
func HashCode(code Code) (hash Hash) {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(code)
	copy(hash[:], hasher.Sum(nil))
	return
}
