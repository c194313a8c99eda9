package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dummygen/dummygen-go/internal/model"
)

func parseArgs(t *testing.T, args ...string) (CLI, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("dummygen"))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	return cli, err
}

func TestParseArgs_Defaults(t *testing.T) {
	cli, err := parseArgs(t)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultGenerateRequest(), cli.request())
}

func TestParseArgs_AllFlags(t *testing.T) {
	cli, err := parseArgs(t, "--format", "xml", "-n", "3", "--sub-modules", "2", "--array-size", "4", "-t", "uuid", "--no-limits")
	require.NoError(t, err)
	assert.Equal(t, model.GenerateRequest{
		Format:     model.FormatXML,
		Fields:     3,
		SubModules: 2,
		ArraySize:  4,
		FieldType:  model.FieldTypeUUID,
	}, cli.request())
	assert.True(t, cli.NoLimits)
}

func TestParseArgs_RejectsUnknownEnum(t *testing.T) {
	_, err := parseArgs(t, "--field-type", "date")
	assert.Error(t, err)
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	err := run(CLI{Format: "json", Fields: 2, ArraySize: 1, FieldType: "boolean"}, &out)
	require.NoError(t, err)

	var doc map[string]bool
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Len(t, doc, 2)
	assert.Equal(t, byte('\n'), out.Bytes()[out.Len()-1])
}

func TestRun_XML(t *testing.T) {
	var out bytes.Buffer
	err := run(CLI{Format: "xml", Fields: 0, ArraySize: 1, FieldType: "string"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "<data></data>\n", out.String())
}
