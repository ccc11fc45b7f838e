package flowsheet_test

import (
	"testing"

	"github.com/fwojciec/flowsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain name", raw: "Foo", want: "Foo"},
		{name: "keeps generic parameters", raw: "Array<T>", want: "Array<T>"},
		{name: "keeps nested generic parameters", raw: "$Call<F: Array<string>, A>", want: "$Call<F: Array<string>, A>"},
		{name: "keeps text through the final bracket", raw: "Map<K, V> implements Iterable<[K, V]>", want: "Map<K, V> implements Iterable<[K, V]>"},
		{name: "ignores arrows inside generic parameters", raw: "Fn<T = () => void>", want: "Fn<T = () => void>"},
		{name: "strips assignment", raw: "Props = {", want: "Props"},
		{name: "strips type annotation", raw: "document: Document;", want: "document"},
		{name: "keeps annotation ending in a generic type", raw: "globalThis: Array<string>;", want: "globalThis: Array<string>"},
		{name: "cuts arrow type after the last bracket", raw: "f: (x: number) => string;", want: "f: (x: number) =>"},
		{name: "strips extends clause", raw: "Bar  extends Baz", want: "Bar"},
		{name: "strips extends after generic bracket in parent", raw: "Foo extends Bar<T>", want: "Foo"},
		{name: "strips single quotes", raw: "'react'", want: "react"},
		{name: "strips double quotes", raw: `"events"`, want: "events"},
		{name: "strips one pair of quotes", raw: `"'fs'"`, want: "'fs'"},
		{name: "keeps mismatched quotes", raw: `'fs"`, want: `'fs"`},
		{name: "keeps unbalanced bracket", raw: "Broken<T", want: "Broken<T"},
		{name: "trims whitespace", raw: "  Spaced  ", want: "Spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, flowsheet.CleanName(tt.raw))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("sorts case-insensitively", func(t *testing.T) {
		t.Parallel()

		decls := []*flowsheet.Declaration{
			{Name: "beta"},
			{Name: "Alpha"},
			{Name: "$gamma"},
			{Name: "Delta"},
		}

		flowsheet.Normalize(decls)

		assert.Equal(t, []string{"$gamma", "Alpha", "beta", "Delta"}, names(decls))
	})

	t.Run("normalizes and sorts members independently", func(t *testing.T) {
		t.Parallel()

		decls := []*flowsheet.Declaration{
			{Name: "'zlib'", Kind: flowsheet.KindModule, Members: []*flowsheet.Declaration{
				{Name: "Zip extends Stream"},
				{Name: "deflate: Function;"},
			}},
			{Name: "'assert'", Kind: flowsheet.KindModule, Members: []*flowsheet.Declaration{}},
		}

		flowsheet.Normalize(decls)

		assert.Equal(t, []string{"assert", "zlib"}, names(decls))
		assert.Equal(t, []string{"deflate", "Zip"}, names(decls[1].Members))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		body := `declare class Foo<T> extends Bar<T> {
declare var navigator: Navigator;
declare type $Keys<O> = any;
type Props = {
opaque type Token: string;
declare module 'react' {
  declare export type Node = React$Node;
  declare export class Component<Props, State> {
}
`
		once := flowsheet.Normalize(flowsheet.ParseDeclarations(body, "core.js"))
		snapshot := clone(once)

		twice := flowsheet.Normalize(once)

		require.NotEmpty(t, snapshot)
		assert.Equal(t, snapshot, twice)
	})
}

func names(decls []*flowsheet.Declaration) []string {
	out := make([]string, 0, len(decls))
	for _, d := range decls {
		out = append(out, d.Name)
	}
	return out
}

func clone(decls []*flowsheet.Declaration) []*flowsheet.Declaration {
	if decls == nil {
		return nil
	}
	out := make([]*flowsheet.Declaration, 0, len(decls))
	for _, d := range decls {
		c := *d
		c.Members = clone(d.Members)
		out = append(out, &c)
	}
	return out
}
