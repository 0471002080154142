// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package identityset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentitySet(t *testing.T) {
	r := require.New(t)

	seen := make(map[string]bool, Size())
	for i := 0; i < Size(); i++ {
		addr := Address(i)
		r.False(seen[addr.String()], "identity %d collides", i)
		seen[addr.String()] = true
		r.Equal(addr.String(), Address(i).String())
		r.Equal(addr.String(), PrivateKey(i).PublicKey().Address().String())
	}
	r.Panics(func() { PrivateKey(Size()) })
}
