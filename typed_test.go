package bitfield

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathType uint8

const (
	pathNamed pathType = iota
	pathUnique
)

func (p *pathType) UnpackField(raw Storage) error {
	switch raw {
	case Storage(pathNamed), Storage(pathUnique):
		*p = pathType(raw)
		return nil
	}
	return fmt.Errorf("unknown path type %d", raw)
}

type addressType uint8

const (
	addressIPv4 addressType = iota
	addressIPv6
	addressDomain
)

func (a *addressType) UnpackField(raw Storage) error {
	switch raw {
	case Storage(addressIPv4), Storage(addressIPv6), Storage(addressDomain):
		*a = addressType(raw)
		return nil
	}
	return fmt.Errorf("unknown address type %d", raw)
}

type protocolType uint8

const (
	protocolLocal protocolType = iota
	protocolTCP
	protocolUDP
	protocolUDT
)

func (p *protocolType) UnpackField(raw Storage) error {
	if raw > Storage(protocolUDT) {
		return fmt.Errorf("unknown protocol %d", raw)
	}
	*p = protocolType(raw)
	return nil
}

func TestGetAs(t *testing.T) {
	t.Run("Inserted", func(t *testing.T) {
		s := newHeader(t)

		path, err := GetAs[pathType](s, pathTypePos)
		require.NoError(t, err)
		assert.Equal(t, pathUnique, path)

		addr, err := GetAs[addressType](s, addressTypePos)
		require.NoError(t, err)
		assert.Equal(t, addressIPv6, addr)

		proto, err := GetAs[protocolType](s, protocolPos)
		require.NoError(t, err)
		assert.Equal(t, protocolUDP, proto)
	})

	t.Run("FromRaw", func(t *testing.T) {
		s := FromRaw(rawHeader)
		require.NoError(t, s.Add(pathTypePos, 1))
		require.NoError(t, s.Add(protocolPos, 5))
		require.NoError(t, s.Add(addressTypePos, 2))

		path, err := GetAs[pathType](s, pathTypePos)
		require.NoError(t, err)
		assert.Equal(t, pathUnique, path)

		addr, err := GetAs[addressType](s, addressTypePos)
		require.NoError(t, err)
		assert.Equal(t, addressIPv6, addr)

		proto, err := GetAs[protocolType](s, protocolPos)
		require.NoError(t, err)
		assert.Equal(t, protocolUDP, proto)
	})

	t.Run("Unregistered", func(t *testing.T) {
		s := newHeader(t)

		_, err := GetAs[pathType](s, 1)
		assert.ErrorIs(t, err, ErrConversion)
	})

	t.Run("UnknownDiscriminant", func(t *testing.T) {
		s, err := New(8)
		require.NoError(t, err)
		_, err = InsertAs(s, addressTypePos, 2, uint8(3))
		require.NoError(t, err)

		addr, err := GetAs[addressType](s, addressTypePos)
		assert.ErrorIs(t, err, ErrConversion)
		assert.Equal(t, addressIPv4, addr, "zero value on failure")

		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, uint32(2), fe.Width)
		assert.Contains(t, err.Error(), "unknown address type 3")
	})

	t.Run("WideDiscriminantNotTruncated", func(t *testing.T) {
		s := FromRaw(0x100)
		require.NoError(t, s.Add(0, 9))

		_, err := GetAs[pathType](s, 0)
		assert.ErrorIs(t, err, ErrConversion)
	})
}

func TestGetUint(t *testing.T) {
	t.Run("Fits", func(t *testing.T) {
		s := FromRaw(0xABCD_1234)
		require.NoError(t, s.Add(0, 16))
		require.NoError(t, s.Add(16, 8))

		lo, err := GetUint[uint16](s, 0)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x1234), lo)

		b, err := GetUint[uint8](s, 16)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xCD), b)
	})

	t.Run("TooLarge", func(t *testing.T) {
		s := FromRaw(0x1FF)
		require.NoError(t, s.Add(0, 9))

		_, err := GetUint[uint8](s, 0)
		assert.ErrorIs(t, err, ErrConversion)

		v, err := GetUint[uint16](s, 0)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x1FF), v)
	})

	t.Run("Unregistered", func(t *testing.T) {
		s := FromRaw(0)

		_, err := GetUint[uint32](s, 0)
		assert.ErrorIs(t, err, ErrConversion)
	})
}

func TestInsertAsNamedType(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)

	got, err := InsertAs(s, protocolPos, 5, protocolTCP)
	require.NoError(t, err)
	assert.Equal(t, Storage(protocolTCP), got)

	proto, err := GetAs[protocolType](s, protocolPos)
	require.NoError(t, err)
	assert.Equal(t, protocolTCP, proto)
}
