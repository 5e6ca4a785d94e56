package types

// Value is a directive attribute value as it appeared in the document,
// including its enclosing quote characters: run="app.ts" is stored as
// `"app.ts"`. Boolean attributes store True. Flags are forwarded as
// key=value with the quotes intact, so callers that need the bare text
// must use Unquoted.
type Value string

// True is the value recorded for a valueless (boolean) attribute.
const True Value = `"true"`

// Unquoted returns the value with its first and last character removed.
func (v Value) Unquoted() string {
	if len(v) < 2 {
		return ""
	}
	return string(v[1 : len(v)-1])
}

// Attribute is a single name/value pair.
type Attribute struct {
	Name  string
	Value Value
}

// Attributes is an insertion-ordered attribute map for one directive
// occurrence. Setting a name twice keeps its first position and the last value.
type Attributes struct {
	names  []string
	values map[string]Value
}

// NewAttributes creates an attribute map from pairs, applied in order.
func NewAttributes(pairs ...Attribute) *Attributes {
	a := &Attributes{values: make(map[string]Value, len(pairs))}
	for _, p := range pairs {
		a.Set(p.Name, p.Value)
	}
	return a
}

// Set records name=value.
func (a *Attributes) Set(name string, value Value) {
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// Get returns the value stored for name.
func (a *Attributes) Get(name string) (Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Len returns the number of distinct names.
func (a *Attributes) Len() int {
	return len(a.names)
}

// Names returns attribute names in insertion order.
func (a *Attributes) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Pairs returns the attributes in insertion order.
func (a *Attributes) Pairs() []Attribute {
	out := make([]Attribute, 0, len(a.names))
	for _, n := range a.names {
		out = append(out, Attribute{Name: n, Value: a.values[n]})
	}
	return out
}
