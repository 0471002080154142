// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package byteutil

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	input := uint64(1844674407370955161)
	byteInput := []byte{0x19, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99}
	t.Run("converts a uint64 to 8 bytes in big-endian", func(t *testing.T) {
		require.Equal(t, byteInput, Uint64ToBytesBigEndian(input))
	})

	t.Run("converts big-endian bytes to uint64", func(t *testing.T) {
		require.Equal(t, input, BytesToUint64BigEndian(byteInput))
	})
}

func TestBoolToByte(t *testing.T) {
	require.Equal(t, byte(1), BoolToByte(true))
	require.Equal(t, byte(0), BoolToByte(false))
}

func TestMust(t *testing.T) {
	require.Equal(t, []byte{1}, Must([]byte{1}, nil))
	require.Panics(t, func() { Must(nil, errors.New("boom")) })
}
