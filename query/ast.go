package query

// Expr represents a query expression
type Expr interface {
	isExpr()
}

// And represents a boolean AND of two expressions
type And struct {
	Left  Expr
	Right Expr
}

func (And) isExpr() {}

// Or represents a boolean OR of two expressions
type Or struct {
	Left  Expr
	Right Expr
}

func (Or) isExpr() {}

// Not represents a boolean NOT of an expression
type Not struct {
	Inner Expr
}

func (Not) isExpr() {}

// Clause matches a value in one field. An empty Field searches every
// tokenized text field.
type Clause struct {
	Field string
	Value string
}

func (Clause) isExpr() {}

// Range matches u32 values in [Lower, Upper].
type Range struct {
	Field string
	Lower string
	Upper string
}

func (Range) isExpr() {}
