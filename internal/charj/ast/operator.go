package ast

type BoolOperator string

const (
	OperatorOr  BoolOperator = "||"
	OperatorAnd BoolOperator = "&&"
)

type CompareOperator string

const (
	OperatorEqual    CompareOperator = "=="
	OperatorNotEqual CompareOperator = "!="

	OperatorGreaterThan        CompareOperator = ">"
	OperatorGreaterThanOrEqual CompareOperator = ">="
	OperatorLessThan           CompareOperator = "<"
	OperatorLessThanOrEqual    CompareOperator = "<="
)

type BinaryOperator string

const (
	OperatorShiftLeft  BinaryOperator = "<<"
	OperatorShiftRight BinaryOperator = ">>"

	OperatorAdd BinaryOperator = "+"
	OperatorSub BinaryOperator = "-"

	OperatorMul BinaryOperator = "*"
	OperatorDiv BinaryOperator = "/"
	OperatorMod BinaryOperator = "%"
)

type UnaryOperator string

const (
	OperatorNot    UnaryOperator = "!"
	OperatorPlus   UnaryOperator = "+"
	OperatorMinus  UnaryOperator = "-"
	OperatorInvert UnaryOperator = "~"
)

type PostfixOperator string

const (
	OperatorIncrement PostfixOperator = "++"
	OperatorDecrement PostfixOperator = "--"
)
