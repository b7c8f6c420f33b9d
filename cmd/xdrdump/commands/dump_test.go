package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/xdrwire/pkg/xdr"
)

func mustParse(t *testing.T, schema string) []field {
	t.Helper()
	fields, err := parseSchema(schema)
	require.NoError(t, err)
	return fields
}

func TestDumpBuffer(t *testing.T) {
	t.Run("DumpsScalarFields", func(t *testing.T) {
		e := xdr.NewEncoder()
		e.EncodeUint(2049)
		e.EncodeInt(-5)
		e.EncodeBool(true)
		e.EncodeString("export")

		rows, err := dumpBuffer(e.Bytes(), mustParse(t, "uint,int,bool,string"), false)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		assert.Equal(t, []string{"1", "0", "uint", "2049"}, rows[0])
		assert.Equal(t, []string{"2", "4", "int", "-5"}, rows[1])
		assert.Equal(t, []string{"3", "8", "bool", "true"}, rows[2])
		assert.Equal(t, []string{"4", "12", "string", `"export"`}, rows[3])
	})

	t.Run("DumpsCompositeFields", func(t *testing.T) {
		e := xdr.NewEncoder()
		require.NoError(t, xdr.EncodeArray(e, []uint32{1, 2}, func(e *xdr.Encoder, v uint32) error {
			e.EncodeUint(v)
			return nil
		}))
		require.NoError(t, xdr.EncodeList(e, []int32{7, 9}, func(e *xdr.Encoder, v int32) error {
			e.EncodeInt(v)
			return nil
		}))

		rows, err := dumpBuffer(e.Bytes(), mustParse(t, "array:uint,list:int"), false)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "[1 2]", rows[0][3])
		assert.Equal(t, "[7 9]", rows[1][3])
	})

	t.Run("DumpsOpaqueAsHex", func(t *testing.T) {
		e := xdr.NewEncoder()
		e.EncodeOpaque([]byte{0xde, 0xad})

		rows, err := dumpBuffer(e.Bytes(), mustParse(t, "opaque"), false)
		require.NoError(t, err)
		assert.Equal(t, "2 bytes: dead", rows[0][3])
	})

	t.Run("ReportsFailingField", func(t *testing.T) {
		e := xdr.NewEncoder()
		e.EncodeUint(1)

		_, err := dumpBuffer(e.Bytes(), mustParse(t, "uint,hyper"), false)
		require.Error(t, err)
		assert.ErrorContains(t, err, "field 2 (hyper)")
		assert.True(t, xdr.IsBufferUnderflow(err))
	})

	t.Run("RejectsTrailingBytes", func(t *testing.T) {
		e := xdr.NewEncoder()
		e.EncodeUint(1)
		e.EncodeUint(2)

		_, err := dumpBuffer(e.Bytes(), mustParse(t, "uint"), false)
		require.Error(t, err)
		assert.True(t, xdr.IsTrailingData(err))
	})

	t.Run("LenientAllowsTrailingBytes", func(t *testing.T) {
		e := xdr.NewEncoder()
		e.EncodeUint(1)
		e.EncodeUint(2)

		rows, err := dumpBuffer(e.Bytes(), mustParse(t, "uint"), true)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}

func TestDecodeHexInput(t *testing.T) {
	t.Run("StripsWhitespace", func(t *testing.T) {
		data, err := decodeHexInput([]byte("0000 0001\n0000  0002"))
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2}, data)
	})

	t.Run("RejectsNonHex", func(t *testing.T) {
		_, err := decodeHexInput([]byte("zz"))
		assert.Error(t, err)
	})
}
