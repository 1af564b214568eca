// Package symtab implements L's symbol table: the identifier-to-type
// mapping used by semantic analysis and consulted read-only by code
// generation, plus the frozen catalogue of built-in functions pre-seeded
// into every table before analysis begins.
package symtab

// Type is one of L's four expression types.
type Type string

const (
	Double  Type = "Double"
	String  Type = "String"
	Boolean Type = "Boolean"
	Void    Type = "Void"
	// Unknown marks an expression whose type could not be determined —
	// e.g. a reference to an undefined name. The analyzer records it as an
	// assignment target's type when the assigned value's type is Unknown,
	// and GetType then returns it; GetType's Double default applies only
	// to names that were never added.
	Unknown Type = "Unknown"
)

// entry records where and as what an identifier was declared.
type entry struct {
	typ  Type
	line int
	col  int
}

// SymbolTable maps identifiers to (type, declaration site), and
// separately tracks every callable's ordered parameter-type list. It does
// not record whether a name is a variable or a function; a name is
// callable exactly when it has a parameter-type list (IsCallable).
//
// Declarations are last-write-wins: a later Add call for a name already
// present overwrites the earlier entry. This matches how forward
// references and return-type refinement behave in L (spec §3): a
// function's return type, inferred as analysis reaches its body, simply
// replaces whatever placeholder type an earlier statement recorded for
// its name.
type SymbolTable struct {
	entries map[string]entry
	params  map[string][]Type
}

// New returns a SymbolTable pre-seeded with the built-in catalogue.
func New() *SymbolTable {
	t := &SymbolTable{
		entries: make(map[string]entry),
		params:  make(map[string][]Type),
	}
	seedBuiltins(t)
	return t
}

// Add records name's type and declaration site, overwriting any earlier
// entry for the same name.
func (t *SymbolTable) Add(name string, typ Type, line, col int) {
	t.entries[name] = entry{typ: typ, line: line, col: col}
}

// AddFunctionParams records name's ordered parameter-type list, overwriting
// any earlier list for the same name. Every callable name — built-in or
// user-defined — has an entry here; absence means "unknown callable".
func (t *SymbolTable) AddFunctionParams(name string, params []Type) {
	t.params[name] = params
}

// Contains reports whether name has been declared.
func (t *SymbolTable) Contains(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// GetType returns name's recorded type, or Double on a miss. This default
// is load-bearing (spec §9): legacy L programs reference undeclared names
// and the code generator still needs a concrete type to emit a declaration
// for, so GetType always hands back something usable. The analyzer's own
// undefined-identifier diagnostic is a separate, explicit check (see
// internal/semantic) — GetType itself never diagnoses, it only defaults.
func (t *SymbolTable) GetType(name string) Type {
	if e, ok := t.entries[name]; ok {
		return e.typ
	}
	return Double
}

// DeclSite returns the line/column Add last recorded for name, and whether
// name is declared at all.
func (t *SymbolTable) DeclSite(name string) (line, col int, ok bool) {
	e, ok := t.entries[name]
	return e.line, e.col, ok
}

// GetFunctionParams returns name's ordered parameter-type list, or an
// empty slice if name has no registered callable signature.
func (t *SymbolTable) GetFunctionParams(name string) []Type {
	if p, ok := t.params[name]; ok {
		return p
	}
	return []Type{}
}

// IsCallable reports whether name has a registered parameter-type list —
// i.e. whether it is known to be callable at all (built-in or
// user-defined).
func (t *SymbolTable) IsCallable(name string) bool {
	_, ok := t.params[name]
	return ok
}
