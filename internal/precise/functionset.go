package precise

import "github.com/mvp-joe/csift/internal/extract"

// functionSet keeps at most one function record per name with definitions
// taking precedence over prototypes, independent of the order the two
// shapes are encountered in the walk.
type functionSet struct {
	order  []string
	byName map[string]extract.Function
}

func newFunctionSet() *functionSet {
	return &functionSet{byName: make(map[string]extract.Function)}
}

// addDefinition records a definition. It replaces a previously seen
// prototype in place; a duplicate definition keeps the first one.
func (fs *functionSet) addDefinition(fn extract.Function) {
	existing, seen := fs.byName[fn.Name]
	if seen && existing.Body != extract.NoBody {
		return
	}
	if !seen {
		fs.order = append(fs.order, fn.Name)
	}
	fs.byName[fn.Name] = fn
}

// addPrototype records a prototype unless the name is already known.
func (fs *functionSet) addPrototype(fn extract.Function) {
	if _, seen := fs.byName[fn.Name]; seen {
		return
	}
	fs.order = append(fs.order, fn.Name)
	fs.byName[fn.Name] = fn
}

// ordered returns the records in first-appearance order.
func (fs *functionSet) ordered() []extract.Function {
	functions := make([]extract.Function, 0, len(fs.order))
	for _, name := range fs.order {
		functions = append(functions, fs.byName[name])
	}
	return functions
}
