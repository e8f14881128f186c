package calclang

import "fmt"

// Evaluate runs the program's statements in source order against e and
// returns the value of the last statement.
func (e *Env) Evaluate(prog *Program) (float64, error) {
	if len(prog.Statements) == 0 {
		return 0, WithPos(ErrEmptyProgram, prog.Pos)
	}
	var result float64
	for _, stmt := range prog.Statements {
		var err error
		result, err = e.evaluateNode(stmt)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}

func (e *Env) evaluateNode(node Node) (float64, error) {
	switch n := node.(type) {

	case *NumberLit:
		return n.Value, nil

	case *VariableRef:
		value, ok := e.Get(n.Name)
		if !ok {
			return 0, WithPos(&UndefinedVariableError{Name: n.Name}, n.Pos)
		}
		return value, nil

	case *Binary:
		// left before right, the order is observable
		left, err := e.evaluateNode(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.evaluateNode(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			// IEEE-754 semantics, division by zero yields Inf or NaN
			return left / right, nil
		}
		return 0, WithPos(fmt.Errorf("unknown operator: %s", n.Op), n.Pos)

	case *Assign:
		value, err := e.evaluateNode(n.Value)
		if err != nil {
			return 0, err
		}
		e.Set(n.Name, value)
		return value, nil

	case *Program:
		return e.Evaluate(n)
	}

	return 0, fmt.Errorf("unknown node type: %T", node)
}
