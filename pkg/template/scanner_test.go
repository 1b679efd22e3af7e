package template

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Placeholder
	}{
		{
			name: "no markers",
			text: "plain text",
			want: nil,
		},
		{
			name: "single placeholder",
			text: "{(name)}",
			want: []Placeholder{{Name: "name", Span: Span{0, 8}}},
		},
		{
			name: "surrounded by literals",
			text: "mod {(name)};",
			want: []Placeholder{{Name: "name", Span: Span{4, 12}}},
		},
		{
			name: "two placeholders",
			text: "{(a)}-{(b|capitalize_once)}",
			want: []Placeholder{
				{Name: "a", Span: Span{0, 5}},
				{Name: "b|capitalize_once", Span: Span{6, 27}},
			},
		},
		{
			name: "empty name",
			text: "x{()}y",
			want: []Placeholder{{Name: "", Span: Span{1, 5}}},
		},
		{
			name: "latest open marker wins",
			text: "{(a{(b)}",
			want: []Placeholder{{Name: "b", Span: Span{3, 8}}},
		},
		{
			name: "unterminated open marker",
			text: "{(name",
			want: nil,
		},
		{
			name: "close marker without open",
			text: "name)} {(x)}",
			want: []Placeholder{{Name: "x", Span: Span{7, 12}}},
		},
		{
			name: "name kept verbatim",
			text: "{( spaced )}",
			want: []Placeholder{{Name: " spaced ", Span: Span{0, 12}}},
		},
		{
			name: "multibyte literals keep byte offsets",
			text: "héllo {(name)}",
			want: []Placeholder{{Name: "name", Span: Span{7, 15}}},
		},
		{
			name: "lone brace at end",
			text: "{",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Scan(tt.text))
			assert.Equal(t, tt.want, got)
			for _, p := range got {
				assert.Equal(t, OpenMarker+p.Name+CloseMarker, tt.text[p.Start:p.End])
			}
		})
	}
}

func TestScanIsRestartable(t *testing.T) {
	seq := Scan("{(a)} {(b)}")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestScanStopsEarly(t *testing.T) {
	var names []string
	for p := range Scan("{(a)}{(b)}{(c)}") {
		names = append(names, p.Name)
		if p.Name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		raw       string
		wantVar   string
		wantPipes []string
	}{
		{"name", "name", []string{}},
		{"name|capitalize_once", "name", []string{"capitalize_once"}},
		{"name|capitalize_all|capitalize_once", "name", []string{"capitalize_all", "capitalize_once"}},
		{"", "", []string{}},
		{"a||b", "a", []string{"", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, pipes := SplitName(tt.raw)
			assert.Equal(t, tt.wantVar, v)
			assert.Equal(t, tt.wantPipes, pipes)
		})
	}
}
