package contracts

type CellSerializer interface {
	Marshal(cellId string, cell *Cell) []byte
	Unmarshal(data []byte) (cellId string, cell *Cell, err error)
}
