package printbreak

// Value is a value with an explicit name.
type Value struct {
	Name  string
	Value interface{}
}

// Named labels v with name, overriding the name taken from the source.
func Named(name string, v interface{}) Value {
	return Value{Name: name, Value: v}
}
