package checker

// Derivation is a resolved plan for constructing an implicit value. Nodes are
// compared by identity: the same plan reached twice is the same pointer.
type Derivation interface {
	derivation()
}

// FromBlockScope references a declaration in an enclosing block.
type FromBlockScope struct {
	Declaration *Declaration
}

// FromImplicitScope references a declaration in the implicit scope.
type FromImplicitScope struct {
	Declaration *Declaration
}

type EmptyObjectDerivation struct{}

// FromLiteral is a string, number or boolean constant.
type FromLiteral struct {
	Value interface{}
}

type FromIntersectionStructure struct {
	Fields []Derivation
}

type ObjectField struct {
	Name  string
	Value Derivation
}

type FromObjectStructure struct {
	Fields []ObjectField
}

type FromTupleStructure struct {
	Fields []Derivation
}

// FromPriorDerivation points back at a node evaluated earlier in the same tree.
type FromPriorDerivation struct {
	Derivation Derivation
}

// FromRule invokes a derivation rule. A non-empty UsedBy marks the rule as
// self-referential; LazyRule then wraps it in a thunk taking itself.
type FromRule struct {
	Rule      *Declaration
	Arguments []Derivation
	UsedBy    []Derivation
	LazyRule  *Declaration
}

// InvalidDerivation is a failed search.
type InvalidDerivation struct {
	Message string
}

func (*FromBlockScope) derivation()            {}
func (*FromImplicitScope) derivation()         {}
func (*EmptyObjectDerivation) derivation()     {}
func (*FromLiteral) derivation()               {}
func (*FromIntersectionStructure) derivation() {}
func (*FromObjectStructure) derivation()       {}
func (*FromTupleStructure) derivation()        {}
func (*FromPriorDerivation) derivation()       {}
func (*FromRule) derivation()                  {}
func (*InvalidDerivation) derivation()         {}
