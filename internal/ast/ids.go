package ast

// NodeID адресует узел в арене дерева (1-based).
type NodeID uint32

// NoNodeID: пустой слот, отсутствующий необязательный элемент грамматики.
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
