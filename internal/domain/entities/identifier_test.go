package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantKind IdentifierKind
		wantErr  bool
	}{
		{
			name:     "integer becomes sequence position",
			value:    0,
			wantKind: IdentifierSequence,
		},
		{
			name:     "int64 becomes sequence position",
			value:    int64(3),
			wantKind: IdentifierSequence,
		},
		{
			name:     "colon separated MAC becomes hardware address",
			value:    "aa:bb:cc:dd:ee:ff",
			wantKind: IdentifierHardwareAddress,
		},
		{
			name:     "dash separated MAC becomes hardware address",
			value:    "AA-BB-CC-DD-EE-FF",
			wantKind: IdentifierHardwareAddress,
		},
		{
			name:     "plain string becomes literal name",
			value:    "eth0",
			wantKind: IdentifierName,
		},
		{
			name:     "MAC-like string with bad octet count is a literal name",
			value:    "aa:bb:cc:dd:ee",
			wantKind: IdentifierName,
		},
		{
			name:    "unsupported type fails",
			value:   3.14,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ClassifyIdentifier(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, id.Kind())
		})
	}
}

func TestClassifyIdentifier_Payloads(t *testing.T) {
	seq, err := ClassifyIdentifier(2)
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Index())

	hw, err := ClassifyIdentifier("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", hw.Value())

	name, err := ClassifyIdentifier("bond0")
	require.NoError(t, err)
	assert.Equal(t, "bond0", name.Value())
}

func TestIsHardwareAddress(t *testing.T) {
	assert.True(t, IsHardwareAddress("00:11:22:33:44:55"))
	assert.True(t, IsHardwareAddress("AA-BB-CC-DD-EE-FF"))
	assert.False(t, IsHardwareAddress("eth0"))
	assert.False(t, IsHardwareAddress("00:11:22:33:44"))
	assert.False(t, IsHardwareAddress("00:11:22:33:44:55:66"))
	assert.False(t, IsHardwareAddress("gg:hh:ii:jj:kk:ll"))
}

func TestIdentifier_String(t *testing.T) {
	assert.Equal(t, "seq:1", SequenceIdentifier(1).String())
	assert.Equal(t, "eth0", NameIdentifier("eth0").String())
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", HardwareAddressIdentifier("aa:bb:cc:dd:ee:ff").String())
}
