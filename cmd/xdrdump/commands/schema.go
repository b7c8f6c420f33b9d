package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldKind enumerates the decodable field types.
type fieldKind int

const (
	kindUint fieldKind = iota
	kindInt
	kindHyper
	kindUhyper
	kindFloat
	kindDouble
	kindBool
	kindString
	kindOpaque
	kindFixedOpaque
	kindArray
	kindList
)

// field is one entry of a parsed schema. Composite kinds carry their
// element type; fixed opaque carries its exact byte size.
type field struct {
	kind fieldKind
	name string
	size int
	elem *field
}

// parseSchema parses a comma-separated schema string into a field list.
// Composite types nest through colons: "array:uint", "list:fopaque:16".
func parseSchema(s string) ([]field, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("schema is empty")
	}

	var fields []field
	for _, tok := range strings.Split(s, ",") {
		f, err := parseField(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseField(tok string) (field, error) {
	name, arg, hasArg := strings.Cut(tok, ":")

	scalar := map[string]fieldKind{
		"uint":   kindUint,
		"int":    kindInt,
		"hyper":  kindHyper,
		"uhyper": kindUhyper,
		"float":  kindFloat,
		"double": kindDouble,
		"bool":   kindBool,
		"string": kindString,
		"opaque": kindOpaque,
	}

	if kind, ok := scalar[name]; ok {
		if hasArg {
			return field{}, fmt.Errorf("type %q takes no argument", name)
		}
		return field{kind: kind, name: name}, nil
	}

	switch name {
	case "fopaque":
		if !hasArg {
			return field{}, fmt.Errorf("fopaque requires a size, e.g. fopaque:8")
		}
		size, err := strconv.Atoi(arg)
		if err != nil || size < 0 {
			return field{}, fmt.Errorf("invalid fopaque size %q", arg)
		}
		return field{kind: kindFixedOpaque, name: tok, size: size}, nil

	case "array", "list":
		if !hasArg {
			return field{}, fmt.Errorf("%s requires an element type, e.g. %s:uint", name, name)
		}
		elem, err := parseField(arg)
		if err != nil {
			return field{}, err
		}
		kind := kindArray
		if name == "list" {
			kind = kindList
		}
		return field{kind: kind, name: tok, elem: &elem}, nil

	default:
		return field{}, fmt.Errorf("unknown field type %q", name)
	}
}
