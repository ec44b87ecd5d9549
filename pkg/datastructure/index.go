package datastructure

type Index int32

const (
	INVALID_NODE_ID Index = -1
)
