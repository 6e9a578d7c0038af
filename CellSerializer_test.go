package main

import (
	"github.com/stretchr/testify/assert"
	"sheetsApi/contracts"
	"testing"
)

func TestCellBinarySerializer_Marshal(t *testing.T) {
	serializer := &CellBinarySerializer{}
	serialized := serializer.Marshal("key1", &contracts.Cell{Value: "=1+2", Result: "3"})
	assert.NotNil(t, serialized)
	assert.Len(t, serialized, serializerHeaderSize+len("key1")+len("=1+2")+len("3"))
}

func TestCellBinarySerializer_Unmarshal(t *testing.T) {
	serializer := &CellBinarySerializer{}

	t.Run("valid_data", func(t *testing.T) {
		assertMarshalAndUnmarshal := func(expectedKey string, expectedCell *contracts.Cell) {
			serialized := serializer.Marshal(expectedKey, expectedCell)
			actualKey, actualCell, err := serializer.Unmarshal(serialized)

			assert.NoError(t, err)
			assert.Equal(t, expectedKey, actualKey)
			assert.Equal(t, expectedCell, actualCell)
		}

		assertMarshalAndUnmarshal("var0", &contracts.Cell{Value: "10", Result: "10"})
		assertMarshalAndUnmarshal("var1", &contracts.Cell{Value: "=var0+5", Result: "15.0"})
		assertMarshalAndUnmarshal("var2", &contracts.Cell{Value: "=var9", Result: ""})
		assertMarshalAndUnmarshal("", &contracts.Cell{})
	})

	t.Run("empty_data", func(t *testing.T) {
		key, cell, err := serializer.Unmarshal([]byte{})

		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, "", key)
		assert.Nil(t, cell)
	})

	t.Run("invalid_data", func(t *testing.T) {
		key, cell, err := serializer.Unmarshal([]byte{' ', 'q', 'r', 0, 0, 0})

		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, "", key)
		assert.Nil(t, cell)
	})

	t.Run("truncated_value", func(t *testing.T) {
		serialized := serializer.Marshal("var0", &contracts.Cell{Value: "=var1*2", Result: "4"})

		_, cell, err := serializer.Unmarshal(serialized[:len(serialized)-4])

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, cell)
	})
}
