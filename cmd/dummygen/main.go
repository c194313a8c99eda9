package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dummygen/dummygen-go/internal/dummy"
	"github.com/dummygen/dummygen-go/internal/model"
	"github.com/dummygen/dummygen-go/internal/service"
)

// CLI defines the command-line interface
type CLI struct {
	Format     string `help:"Output format." short:"f" default:"json" enum:"json,xml"`
	Fields     int    `help:"Number of fields per object." short:"n" default:"5"`
	SubModules int    `help:"Levels of nested objects." short:"s" default:"0"`
	ArraySize  int    `help:"Repeat the object this many times in an array." short:"a" default:"1"`
	FieldType  string `help:"Type of field values." short:"t" default:"string" enum:"string,number,boolean,uuid,email"`
	Output     string `help:"Write to this file instead of stdout." short:"o" type:"path"`
	NoLimits   bool   `help:"Do not clamp counts to the server defaults."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("dummygen"),
		kong.Description("Generate placeholder JSON or XML documents"),
		kong.UsageOnError(),
	)

	out := io.Writer(os.Stdout)
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := run(cli, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run generates one document described by cli and writes it to w.
func run(cli CLI, w io.Writer) error {
	limits := dummy.DefaultLimits()
	if cli.NoLimits {
		limits = dummy.Limits{}
	}

	resp, err := service.NewGeneratorService(limits).Generate(cli.request())
	if err != nil {
		return err
	}

	if _, err := w.Write(resp.Body); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func (c CLI) request() model.GenerateRequest {
	return model.GenerateRequest{
		Format:     model.ParseFormat(c.Format),
		Fields:     c.Fields,
		SubModules: c.SubModules,
		ArraySize:  c.ArraySize,
		FieldType:  model.ParseFieldType(c.FieldType),
	}
}
