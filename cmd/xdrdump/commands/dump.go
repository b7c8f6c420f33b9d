package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/marmos91/xdrwire/pkg/xdr"
)

func runDump(cmd *cobra.Command, args []string) error {
	fields, err := parseSchema(schemaFlag)
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	data, err := readInput(args)
	if err != nil {
		return err
	}
	if hexFlag {
		if data, err = decodeHexInput(data); err != nil {
			return fmt.Errorf("invalid hex input: %w", err)
		}
	}

	rows, err := dumpBuffer(data, fields, lenientFlag)
	if err != nil {
		return err
	}

	printTable(os.Stdout, []string{"#", "OFFSET", "TYPE", "VALUE"}, rows)
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}

// decodeHexInput strips whitespace and decodes hex text into raw bytes.
func decodeHexInput(data []byte) ([]byte, error) {
	clean := strings.Join(strings.Fields(string(data)), "")
	return hex.DecodeString(clean)
}

// dumpBuffer decodes data field by field and returns the table rows.
// Unless lenient is set, leftover bytes after the last field are an error.
func dumpBuffer(data []byte, fields []field, lenient bool) ([][]string, error) {
	dec := xdr.NewDecoder(data)

	rows := make([][]string, 0, len(fields))
	for i, f := range fields {
		offset := dec.Position()
		value, err := decodeValue(dec, f)
		if err != nil {
			return nil, fmt.Errorf("field %d (%s): %w", i+1, f.name, err)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(offset),
			f.name,
			value,
		})
	}

	if !lenient {
		if err := dec.Done(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// decodeValue decodes one field and renders it for display. Composite
// fields recurse through their element type.
func decodeValue(dec *xdr.Decoder, f field) (string, error) {
	switch f.kind {
	case kindUint:
		v, err := dec.DecodeUint()
		return strconv.FormatUint(uint64(v), 10), err
	case kindInt:
		v, err := dec.DecodeInt()
		return strconv.FormatInt(int64(v), 10), err
	case kindHyper:
		v, err := dec.DecodeHyper()
		return strconv.FormatInt(v, 10), err
	case kindUhyper:
		v, err := dec.DecodeUhyper()
		return strconv.FormatUint(v, 10), err
	case kindFloat:
		v, err := dec.DecodeFloat()
		return strconv.FormatFloat(float64(v), 'g', -1, 32), err
	case kindDouble:
		v, err := dec.DecodeDouble()
		return strconv.FormatFloat(v, 'g', -1, 64), err
	case kindBool:
		v, err := dec.DecodeBool()
		return strconv.FormatBool(v), err
	case kindString:
		v, err := dec.DecodeString()
		return strconv.Quote(v), err
	case kindOpaque:
		b, err := dec.DecodeOpaque()
		return formatOpaque(b), err
	case kindFixedOpaque:
		b, err := dec.DecodeFixedOpaque(f.size)
		return formatOpaque(b), err
	case kindArray:
		vals, err := xdr.DecodeArray(dec, func(d *xdr.Decoder) (string, error) {
			return decodeValue(d, *f.elem)
		})
		return "[" + strings.Join(vals, " ") + "]", err
	case kindList:
		vals, err := xdr.DecodeList(dec, func(d *xdr.Decoder) (string, error) {
			return decodeValue(d, *f.elem)
		})
		return "[" + strings.Join(vals, " ") + "]", err
	default:
		return "", fmt.Errorf("unknown field kind %d", f.kind)
	}
}

func formatOpaque(b []byte) string {
	return fmt.Sprintf("%d bytes: %s", len(b), hex.EncodeToString(b))
}

// printTable renders rows in the borderless style shared by the rest of
// the tooling.
func printTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
}
