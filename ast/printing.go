package ast

import (
	"strconv"
	"strings"
)

// binding strength of the syntax surrounding a printed expression
const (
	precExpr = iota
	precArith
	precApp
	precAtom
)

// ExprString returns a string representation of an expression, in the same syntax accepted by the parser.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, precExpr, e)
	return sb.String()
}

func exprString(sb *strings.Builder, prec int, e Expr) {
	switch et := e.(type) {
	case *IntLit:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Var:
		sb.WriteString(et.Name)

	case *Add:
		binaryString(sb, prec, " + ", et.Left, et.Right)

	case *Sub:
		binaryString(sb, prec, " - ", et.Left, et.Right)

	case *Let:
		if prec > precExpr {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, precExpr, et.Value)
		sb.WriteString(" in ")
		exprString(sb, precExpr, et.Body)
		if prec > precExpr {
			sb.WriteByte(')')
		}

	case *If:
		if prec > precExpr {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, precExpr, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, precExpr, et.Then)
		sb.WriteString(" else ")
		exprString(sb, precExpr, et.Else)
		if prec > precExpr {
			sb.WriteByte(')')
		}

	case *Func:
		if prec > precExpr {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		sb.WriteString(et.Param)
		sb.WriteString(" -> ")
		exprString(sb, precExpr, et.Body)
		if prec > precExpr {
			sb.WriteByte(')')
		}

	case *Call:
		if prec > precApp {
			sb.WriteByte('(')
		}
		exprString(sb, precApp, et.Func)
		sb.WriteByte(' ')
		exprString(sb, precAtom, et.Arg)
		if prec > precApp {
			sb.WriteByte(')')
		}

	case *Tuple:
		sb.WriteByte('(')
		for i, elem := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, precExpr, elem)
		}
		if len(et.Elems) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')

	case *TupleAccess:
		exprString(sb, precAtom, et.Tuple)
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(et.Index))

	case nil:
		sb.WriteString("<nil>")
	}
}

func binaryString(sb *strings.Builder, prec int, op string, left, right Expr) {
	if prec > precArith {
		sb.WriteByte('(')
	}
	exprString(sb, precArith, left)
	sb.WriteString(op)
	exprString(sb, precApp, right)
	if prec > precArith {
		sb.WriteByte(')')
	}
}
