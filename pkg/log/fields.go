package log

import "fmt"

// Field is a single structured key/value pair attached to an entry.
type Field struct {
	Key   string
	Value interface{}
}

// Str builds a string Field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 builds a uint64 Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Hex builds a Field holding the zero padded hex form of a 64-bit value.
func Hex(key string, value uint64) Field {
	return Field{Key: key, Value: fmt.Sprintf("%016x", value)}
}

// Err builds the conventional "error" Field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Component tags an entry with the emitting component.
func Component(name string) Field { return Field{Key: ComponentKey, Value: name} }

// ComponentKey is the field name used by Component.
const ComponentKey = "component"
