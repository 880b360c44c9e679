package common

type OperationType int

const (
	Relation OperationType = iota
	Group
	Project
	Select
	Rename
	Union
	Difference
	Join
	Product
	Unknown
)

func (o OperationType) String() string {
	switch o {
	case Relation:
		return "relation"
	case Group:
		return "group"
	case Project:
		return "project"
	case Select:
		return "select"
	case Rename:
		return "rename"
	case Union:
		return "union"
	case Difference:
		return "difference"
	case Join:
		return "join"
	case Product:
		return "product"
	default:
		return "unknown"
	}
}

// BinaryOperation maps a binary operator symbol to its operation.
func BinaryOperation(symbol string) OperationType {
	switch symbol {
	case UNION:
		return Union
	case DIFFERENCE:
		return Difference
	case JOIN:
		return Join
	case PRODUCT:
		return Product
	default:
		return Unknown
	}
}
