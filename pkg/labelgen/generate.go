// Package labelgen compiles a label table into Go source for a branch-chain
// recognizer and writes it into a project tree.
package labelgen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/kittclouds/unitlabel/pkg/label"
)

const headerComment = "Code generated by labelgen. DO NOT EDIT."

// Options control the shape of the generated file.
type Options struct {
	PackagePath string
	PackageName string
	UnitPath    string
	FuncName    string
}

// DefaultOptions targets the recognizer package.
func DefaultOptions() Options {
	return Options{
		PackagePath: "github.com/kittclouds/unitlabel/pkg/recognizer",
		PackageName: "recognizer",
		UnitPath:    "github.com/kittclouds/unitlabel/pkg/unit",
		FuncName:    "findGenerated",
	}
}

// Generate renders a function with the signature
//
//	func(haystack []byte) (unit.Unit, int, bool)
//
// that switches on the first byte and then tests the labels sharing it in
// match order. Output depends only on the contents of o.
func Generate(o label.Ordered, opts Options) ([]byte, error) {
	const hay = "haystack"

	groups := make(map[byte][]label.Entry)
	var leads []int
	for _, e := range o.Entries() {
		b := e.Label[0]
		if _, ok := groups[b]; !ok {
			leads = append(leads, int(b))
		}
		groups[b] = append(groups[b], e)
	}
	sort.Ints(leads)

	cases := make([]jen.Code, 0, len(leads))
	for _, lb := range leads {
		b := byte(lb)
		body := make([]jen.Code, 0, len(groups[b]))
		for _, e := range groups[b] {
			n := e.Len()
			ret := jen.Return(jen.Qual(opts.UnitPath, e.Unit.String()), jen.Lit(n), jen.True())
			if n == 1 {
				// the switch already matched the only byte
				body = append(body, ret)
				continue
			}
			cond := jen.Len(jen.Id(hay)).Op(">=").Lit(n).
				Op("&&").
				String().Call(jen.Id(hay).Index(jen.Empty(), jen.Lit(n))).Op("==").Lit(e.Label)
			body = append(body, jen.If(cond).Block(ret))
		}
		cases = append(cases, jen.Case(leadByte(b)).Block(body...))
	}

	f := jen.NewFilePathName(opts.PackagePath, opts.PackageName)
	f.HeaderComment(headerComment)
	f.ImportName(opts.UnitPath, "unit")

	f.Comment(fmt.Sprintf("%s reports the longest unit designator label that prefixes", opts.FuncName))
	f.Comment("haystack, along with the number of bytes it spans.")
	f.Func().Id(opts.FuncName).
		Params(jen.Id(hay).Index().Byte()).
		Params(jen.Qual(opts.UnitPath, "Unit"), jen.Int(), jen.Bool()).
		Block(
			jen.If(jen.Len(jen.Id(hay)).Op("==").Lit(0)).Block(
				jen.Return(jen.Lit(0), jen.Lit(0), jen.False()),
			),
			jen.Switch(jen.Id(hay).Index(jen.Lit(0))).Block(cases...),
			jen.Return(jen.Lit(0), jen.Lit(0), jen.False()),
		)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("labelgen: render: %w", err)
	}
	return buf.Bytes(), nil
}

func leadByte(b byte) jen.Code {
	if b >= 0x20 && b < 0x7f && b != '\'' && b != '\\' {
		return jen.LitRune(rune(b))
	}
	return jen.Id(fmt.Sprintf("0x%02x", b))
}
