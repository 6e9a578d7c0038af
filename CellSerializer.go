package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sheetsApi/contracts"
)

var SerializerError = errors.New("invalid serialized data")

const serializerHeaderSize = 2 + 4

// CellBinarySerializer layout: uint16 cell id length | cell id | uint32 value length | value | result
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(cellId string, cell *contracts.Cell) []byte {
	serializedData := make([]byte, 0, serializerHeaderSize+len(cellId)+len(cell.Value)+len(cell.Result))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(cellId)))
	serializedData = append(serializedData, cellId...)
	serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(len(cell.Value)))
	serializedData = append(serializedData, cell.Value...)
	serializedData = append(serializedData, cell.Result...)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (cellId string, cell *contracts.Cell, err error) {
	if len(data) < serializerHeaderSize {
		return "", nil, fmt.Errorf("%w: should be at least %d bytes (data: %v)", SerializerError, serializerHeaderSize, string(data))
	}

	keyLength := int(binary.LittleEndian.Uint16(data))
	if len(data) < keyLength+serializerHeaderSize {
		return "", nil, fmt.Errorf("%w: key size is less than bytes amount (keySize: %d; data: %v)", SerializerError, keyLength, string(data))
	}

	valueOffset := keyLength + serializerHeaderSize
	valueLength := int(binary.LittleEndian.Uint32(data[keyLength+2:]))
	if len(data) < valueOffset+valueLength {
		return "", nil, fmt.Errorf("%w: value size is less than bytes amount (valueSize: %d; data: %v)", SerializerError, valueLength, string(data))
	}

	cellId = string(data[2 : keyLength+2])
	cell = &contracts.Cell{
		Value:  string(data[valueOffset : valueOffset+valueLength]),
		Result: string(data[valueOffset+valueLength:]),
	}
	return
}
