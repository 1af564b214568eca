package symtab

// Builtin describes one pre-declared callable's signature: its return type
// and its ordered parameter types. Variadic builtins (only print) accept
// any number of arguments instead of a fixed parameter list — the analyzer
// and code generator special-case print by name (spec §4.4, §4.5.4)
// instead of consulting Params for it.
type Builtin struct {
	Name     string
	Return   Type
	Params   []Type
	Variadic bool
}

// Catalogue is the frozen set of built-in functions installed into every
// fresh SymbolTable, grouped the way the teacher's objects/builtins.go and
// std/{strings,math,file_io,os}.go group their own builtin tables:
// printing, string manipulation, arithmetic, filesystem, process/env.
var Catalogue = []Builtin{
	// print is variadic: any number of String or Double arguments,
	// checked individually at the call site rather than via Params.
	{Name: "print", Return: Void, Variadic: true},

	// String manipulation.
	{Name: "length", Return: Double, Params: []Type{String}},
	{Name: "capitalize", Return: String, Params: []Type{String}},
	{Name: "uppercase", Return: String, Params: []Type{String}},
	{Name: "lowercase", Return: String, Params: []Type{String}},
	{Name: "is_empty", Return: Boolean, Params: []Type{String}},
	{Name: "is_numeric", Return: Boolean, Params: []Type{String}},
	{Name: "concat", Return: String, Params: []Type{String, String}},
	{Name: "contains", Return: Boolean, Params: []Type{String, String}},
	{Name: "index_of", Return: Double, Params: []Type{String, String}},
	{Name: "repeat_string", Return: String, Params: []Type{String, Double}},
	{Name: "reverse", Return: String, Params: []Type{String}},
	{Name: "is_palindrome", Return: Boolean, Params: []Type{String}},

	// Arithmetic.
	{Name: "add", Return: Double, Params: []Type{Double, Double}},
	{Name: "subtract", Return: Double, Params: []Type{Double, Double}},
	{Name: "multiply", Return: Double, Params: []Type{Double, Double}},
	{Name: "divide", Return: Double, Params: []Type{Double, Double}},
	{Name: "max", Return: Double, Params: []Type{Double, Double}},
	{Name: "min", Return: Double, Params: []Type{Double, Double}},
	{Name: "abs", Return: Double, Params: []Type{Double}},
	{Name: "compare", Return: Double, Params: []Type{Double, Double}},
	{Name: "factorial", Return: Double, Params: []Type{Double}},
	{Name: "is_prime", Return: Boolean, Params: []Type{Double}},
	{Name: "average", Return: Double, Params: []Type{Double, Double}},
	{Name: "round", Return: Double, Params: []Type{Double}},
	{Name: "floor", Return: Double, Params: []Type{Double}},
	{Name: "ceil", Return: Double, Params: []Type{Double}},
	{Name: "is_even", Return: Boolean, Params: []Type{Double}},
	{Name: "is_odd", Return: Boolean, Params: []Type{Double}},
	{Name: "digit_sum", Return: Double, Params: []Type{Double}},
	{Name: "is_divisible", Return: Boolean, Params: []Type{Double, Double}},
	{Name: "modulus", Return: Double, Params: []Type{Double, Double}},
	{Name: "in_range", Return: Boolean, Params: []Type{Double, Double, Double}},
	{Name: "random_num", Return: Double, Params: []Type{Double, Double}},
	{Name: "square", Return: Double, Params: []Type{Double}},
	{Name: "cube", Return: Double, Params: []Type{Double}},
	{Name: "percent_of", Return: Double, Params: []Type{Double, Double}},
	{Name: "roll_dice", Return: Double, Params: []Type{Double}},
	{Name: "distance", Return: Double, Params: []Type{Double, Double, Double, Double}},
	{Name: "is_positive", Return: Boolean, Params: []Type{Double}},
	{Name: "is_greater", Return: Boolean, Params: []Type{Double, Double}},

	// Filesystem.
	{Name: "create_file", Return: Boolean, Params: []Type{String}},
	{Name: "delete_file", Return: Boolean, Params: []Type{String}},
	{Name: "copy_file", Return: Boolean, Params: []Type{String, String}},
	{Name: "move_file", Return: Boolean, Params: []Type{String, String}},

	// Process / environment.
	{Name: "exec", Return: String, Params: []Type{String}},
	{Name: "get_wd", Return: String},
	{Name: "get_username", Return: String},
	{Name: "get_user_home_dir", Return: String},
	{Name: "change_dir", Return: Boolean, Params: []Type{String}},
	{Name: "get_env", Return: String, Params: []Type{String}},
}

// byName indexes Catalogue for the heuristics below and for seedBuiltins.
var byName = func() map[string]Builtin {
	m := make(map[string]Builtin, len(Catalogue))
	for _, b := range Catalogue {
		m[b.Name] = b
	}
	return m
}()

// StringParamFunctionNames is the fixed set of built-in names used by the
// parameter-type inference heuristic (spec §4.4). It is not derived from
// the catalogue signatures: get_wd, get_username and get_user_home_dir
// take no parameters, while length and is_palindrome take a String but
// are not listed. A user-defined function whose name collides with
// one of these is treated as taking String parameters for every formal —
// a deliberate, name-based feature of L's informal type system, not a bug
// (spec §9).
var StringParamFunctionNames = map[string]bool{
	"concat": true, "reverse": true, "uppercase": true, "lowercase": true,
	"is_empty": true, "is_numeric": true, "create_file": true,
	"delete_file": true, "copy_file": true, "move_file": true,
	"get_wd": true, "get_username": true, "get_user_home_dir": true,
	"change_dir": true, "get_env": true, "contains": true, "index_of": true,
	"repeat_string": true, "capitalize": true,
}

// BuiltinReturnType returns the catalogue return type for name and whether
// name is in the catalogue at all — used by the return-type heuristic for
// user-defined functions (spec §4.4: "name-based heuristic first, same
// built-in-name table, partitioned into Boolean/String/Double").
func BuiltinReturnType(name string) (Type, bool) {
	b, ok := byName[name]
	return b.Return, ok
}

// IsBuiltin reports whether name is in the frozen built-in catalogue.
func IsBuiltin(name string) bool {
	_, ok := byName[name]
	return ok
}

// seedBuiltins installs Catalogue into t: every entry gets an AddFunctionParams
// registration so IsCallable/GetFunctionParams see it, and an Add so
// Contains/GetType treat the name as a declared identifier of its return
// type. Built-in entries are installed before analysis begins and are
// never removed (spec §3).
func seedBuiltins(t *SymbolTable) {
	for _, b := range Catalogue {
		t.Add(b.Name, b.Return, 0, 0)
		// print is registered with an empty parameter list so
		// IsCallable/Contains see it as a known callable; call-site
		// checking special-cases it by name (spec §4.4) instead of
		// consulting this list for arity/type checking.
		t.AddFunctionParams(b.Name, b.Params)
	}
}
