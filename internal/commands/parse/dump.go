package parse

import (
	"encoding/json"
	"math/big"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/token"
)

// Dump converts a syntax tree to plain maps and slices for JSON encoding.
// Every node becomes an object with a "node" key naming its type; locations
// become [start, end] pairs and numbers keep their full precision.
func Dump(node ast.Node) any {
	return dumpValue(reflect.ValueOf(node))
}

func dumpValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return dumpValue(v.Elem())

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}

		if n, ok := v.Interface().(*big.Int); ok {
			return json.Number(n.String())
		}

		return dumpValue(v.Elem())

	case reflect.Slice:
		items := make([]any, v.Len())
		for i := range items {
			items[i] = dumpValue(v.Index(i))
		}

		return items

	case reflect.Struct:
		switch value := v.Interface().(type) {
		case token.Location:
			return [2]int{value.Start, value.End}

		case ast.Type:
			return value.String()
		}

		return dumpStruct(v)

	default:
		return v.Interface()
	}
}

func dumpStruct(v reflect.Value) map[string]any {
	t := v.Type()

	fields := make(map[string]any, t.NumField()+1)
	fields["node"] = t.Name()

	for i := 0; i < t.NumField(); i++ {
		fields[lowerFirst(t.Field(i).Name)] = dumpValue(v.Field(i))
	}

	return fields
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}
