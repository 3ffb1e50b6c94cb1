// Package debugfmt turns arbitrary Go values into multi-line debug text.
//
// The output is indented with four spaces and puts one field or element
// per line:
//
//	main.User {
//	    Name: "ada",
//	    Tags: [
//	        "admin",
//	    ],
//	    Manager: nil,
//	}
//
// Strings are quoted, so a string value is always a single quoted line.
// This is what pkg/detect relies on to tell string values apart from
// structured ones.
package debugfmt

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Indent is one nesting level.
const Indent = "    "

// MaxNesting bounds recursion. Deeper values print as "...".
const MaxNesting = 64

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	timeType     = reflect.TypeOf(time.Time{})
)

// Sprint returns the debug text of v.
func Sprint(v interface{}) string {
	p := &printer{seen: map[uintptr]bool{}}
	p.value(reflect.ValueOf(v), 0)
	return p.b.String()
}

type printer struct {
	b    strings.Builder
	seen map[uintptr]bool
}

func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.b.WriteString(Indent)
	}
}

func (p *printer) value(v reflect.Value, depth int) {
	if !v.IsValid() {
		p.b.WriteString("nil")
		return
	}
	if depth > MaxNesting {
		p.b.WriteString("...")
		return
	}
	if p.special(v) {
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		p.b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		p.b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		p.b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		p.b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		fmt.Fprintf(&p.b, "%v", v.Complex())
	case reflect.String:
		p.b.WriteString(strconv.Quote(v.String()))
	case reflect.Ptr:
		p.pointer(v, depth)
	case reflect.Interface:
		if v.IsNil() {
			p.b.WriteString("nil")
			return
		}
		p.value(v.Elem(), depth)
	case reflect.Struct:
		p.structValue(v, depth)
	case reflect.Slice:
		if v.IsNil() {
			p.b.WriteString("[]")
			return
		}
		p.list(v, depth)
	case reflect.Array:
		p.list(v, depth)
	case reflect.Map:
		p.mapValue(v, depth)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			p.b.WriteString("nil")
			return
		}
		fmt.Fprintf(&p.b, "%s(%#x)", v.Type().String(), v.Pointer())
	default:
		p.b.WriteString(v.Type().String())
	}
}

// special handles errors, times and Stringers. It reports whether it
// wrote anything.
func (p *printer) special(v reflect.Value) (handled bool) {
	if !v.CanInterface() {
		return false
	}
	t := v.Type()
	if isNilPointer(v) {
		return false
	}

	defer func() {
		// A String or Error method that panics falls back to reflection.
		if r := recover(); r != nil {
			handled = false
		}
	}()

	switch {
	case t == timeType:
		text := v.Interface().(time.Time).String()
		p.b.WriteString(text)
		return true
	case t.Implements(errorType):
		msg := v.Interface().(error).Error()
		p.b.WriteString(t.String() + "(" + strconv.Quote(msg) + ")")
		return true
	case t.Implements(stringerType):
		text := v.Interface().(fmt.Stringer).String()
		if isStructLike(t) {
			p.b.WriteString(strings.TrimPrefix(t.String(), "*") + "(" + text + ")")
		} else {
			p.b.WriteString(text)
		}
		return true
	}
	return false
}

func isNilPointer(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func isStructLike(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func (p *printer) pointer(v reflect.Value, depth int) {
	if v.IsNil() {
		p.b.WriteString("nil")
		return
	}
	addr := v.Pointer()
	if p.seen[addr] {
		p.b.WriteString("&<cycle>")
		return
	}
	p.seen[addr] = true
	defer delete(p.seen, addr)

	p.b.WriteString("&")
	p.value(v.Elem(), depth)
}

func typeName(t reflect.Type) string {
	if t.Name() == "" && t.Kind() == reflect.Struct {
		return "struct"
	}
	return t.String()
}

func (p *printer) structValue(v reflect.Value, depth int) {
	t := v.Type()
	name := typeName(t)
	if t.NumField() == 0 {
		p.b.WriteString(name + " {}")
		return
	}

	p.b.WriteString(name + " {\n")
	for i := 0; i < t.NumField(); i++ {
		p.indent(depth + 1)
		p.b.WriteString(t.Field(i).Name)
		p.b.WriteString(": ")
		p.value(v.Field(i), depth+1)
		p.b.WriteString(",\n")
	}
	p.indent(depth)
	p.b.WriteString("}")
}

func (p *printer) list(v reflect.Value, depth int) {
	if v.Len() == 0 {
		p.b.WriteString("[]")
		return
	}
	p.b.WriteString("[\n")
	for i := 0; i < v.Len(); i++ {
		p.indent(depth + 1)
		p.value(v.Index(i), depth+1)
		p.b.WriteString(",\n")
	}
	p.indent(depth)
	p.b.WriteString("]")
}

type mapEntry struct {
	key   string
	value reflect.Value
}

func (p *printer) mapValue(v reflect.Value, depth int) {
	name := v.Type().String()
	if v.Len() == 0 {
		p.b.WriteString(name + " {}")
		return
	}

	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		kp := &printer{seen: p.seen}
		kp.value(iter.Key(), depth+1)
		entries = append(entries, mapEntry{key: kp.b.String(), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	p.b.WriteString(name + " {\n")
	for _, e := range entries {
		p.indent(depth + 1)
		p.b.WriteString(e.key)
		p.b.WriteString(": ")
		p.value(e.value, depth+1)
		p.b.WriteString(",\n")
	}
	p.indent(depth)
	p.b.WriteString("}")
}
