package calclang

type Node interface {
	NodePos() Pos
}

// Program is the root of every parse, owning its statements in source order.
type Program struct {
	Statements []Node
	Pos        Pos
}

type Assign struct {
	Name  string
	Value Node
	Pos   Pos
}

type Binary struct {
	Op    OpKind
	Left  Node
	Right Node
	Pos   Pos
}

type NumberLit struct {
	Value float64
	Pos   Pos
}

type VariableRef struct {
	Name string
	Pos  Pos
}

func (p *Program) NodePos() Pos     { return p.Pos }
func (a *Assign) NodePos() Pos      { return a.Pos }
func (b *Binary) NodePos() Pos      { return b.Pos }
func (n *NumberLit) NodePos() Pos   { return n.Pos }
func (v *VariableRef) NodePos() Pos { return v.Pos }

type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
)

func (o OpKind) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}
