// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsontext_test

import (
	"io"
	"strings"
	"testing"

	"github.com/cursorlib/staj/jsontext"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jsontext.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jsontext.Token{jsontext.True, jsontext.False, jsontext.Null}},

		// Punctuation
		{"{ [ ] } , :", []jsontext.Token{
			jsontext.LBrace, jsontext.LSquare, jsontext.RSquare, jsontext.RBrace, jsontext.Comma, jsontext.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jsontext.Token{jsontext.String, jsontext.String, jsontext.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jsontext.Token{jsontext.String}},
		{`"\u0000\u01fc\uAA9c"`, []jsontext.Token{jsontext.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jsontext.Token{
			jsontext.Integer, jsontext.Integer, jsontext.Integer,
			jsontext.Number, jsontext.Number, jsontext.Number, jsontext.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jsontext.Token{
			jsontext.LBrace, jsontext.True, jsontext.Comma, jsontext.String, jsontext.Colon,
			jsontext.Integer, jsontext.Null, jsontext.LSquare, jsontext.RSquare, jsontext.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jsontext.Token{
			jsontext.LBrace,
			jsontext.String, jsontext.Colon, jsontext.True, jsontext.Comma,
			jsontext.String, jsontext.Colon,
			jsontext.LSquare,
			jsontext.Null, jsontext.Comma, jsontext.Integer, jsontext.Comma, jsontext.Number,
			jsontext.RSquare,
			jsontext.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jsontext.Token{
			jsontext.String, jsontext.Comma, jsontext.Integer, jsontext.Comma, jsontext.True,
			jsontext.False, jsontext.LSquare, jsontext.String, jsontext.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jsontext.Token
		s := jsontext.NewScanner(strings.NewReader(test.input))
		for s.Next() == nil {
			got = append(got, s.Token())
		}
		if err := s.Err(); err != nil && err != io.EOF {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_withComments(t *testing.T) {
	tests := []struct {
		input string
		want  []jsontext.Token
		coms  []string
	}{
		{"/* block comment */\n\n\n", []jsontext.Token{jsontext.BlockComment},
			[]string{"/* block comment */"}},
		{"// line 1\n\n// line 2\n", []jsontext.Token{jsontext.LineComment, jsontext.LineComment},
			[]string{"// line 1\n", "// line 2\n"}}, // N.B. includes terminating newline, if present
		{"// line at EOF", []jsontext.Token{jsontext.LineComment},
			[]string{"// line at EOF"}},
		{`{
 "x": 1, // howdy do
 "y" /* hide me */ : 2.0 }`, []jsontext.Token{
			jsontext.LBrace, jsontext.String, jsontext.Colon, jsontext.Integer, jsontext.Comma, jsontext.LineComment,
			jsontext.String, jsontext.BlockComment, jsontext.Colon, jsontext.Number, jsontext.RBrace,
		}, []string{
			"// howdy do\n", "/* hide me */",
		}},

		{`"a" // line
false /*
  this is a comment
*/ 1 null [ {} ]`, []jsontext.Token{
			jsontext.String, jsontext.LineComment, jsontext.False, jsontext.BlockComment,
			jsontext.Integer, jsontext.Null, jsontext.LSquare, jsontext.LBrace, jsontext.RBrace, jsontext.RSquare,
		}, []string{
			"// line\n", "/*\n  this is a comment\n*/",
		}},

		{"/* x */\n{\n}//foo", []jsontext.Token{
			jsontext.BlockComment, jsontext.LBrace, jsontext.RBrace, jsontext.LineComment,
		}, []string{
			"/* x */", "//foo",
		}},

		{"/**\n*/", []jsontext.Token{jsontext.BlockComment}, []string{"/**\n*/"}},

		{`/**/"foo"/***/"bar"/****/"baz"/*****/false/*x*/null`, []jsontext.Token{
			jsontext.BlockComment, jsontext.String,
			jsontext.BlockComment, jsontext.String,
			jsontext.BlockComment, jsontext.String,
			jsontext.BlockComment, jsontext.False,
			jsontext.BlockComment, jsontext.Null,
		}, []string{
			"/**/", "/***/", "/****/", "/*****/", "/*x*/",
		}},
	}

	for _, test := range tests {
		var got []jsontext.Token
		var coms []string
		s := jsontext.NewScanner(strings.NewReader(test.input))
		s.AllowComments(true)
		for s.Next() == nil {
			got = append(got, s.Token())
			if tok := s.Token(); tok == jsontext.LineComment || tok == jsontext.BlockComment {
				coms = append(coms, string(s.Text()))
			}
		}
		if err := s.Err(); err != nil && err != io.EOF {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.coms, coms); diff != "" {
			t.Errorf("Input: %#q\nComments: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_decodeAs(t *testing.T) {
	mustScan := func(t *testing.T, input string, want jsontext.Token) *jsontext.Scanner {
		t.Helper()
		s := jsontext.NewScanner(strings.NewReader(input))
		if err := s.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		} else if s.Token() != want {
			t.Fatalf("Next token: got %v, want %v", s.Token(), want)
		}
		return s
	}

	t.Run("Integer", func(t *testing.T) {
		mustScan(t, `-15`, jsontext.Integer)
	})
	t.Run("Number", func(t *testing.T) {
		mustScan(t, `3.25e-5`, jsontext.Number)
	})
	t.Run("Constants", func(t *testing.T) {
		mustScan(t, `true`, jsontext.True)
		mustScan(t, `false`, jsontext.False)
		mustScan(t, `null`, jsontext.Null)
	})
	t.Run("String", func(t *testing.T) {
		const wantText = `"a\tb\u0020c\n"` // as written, quotes included
		const wantDec = "a\tb c\n"         // with escapes undone
		s := mustScan(t, `"a\tb\u0020c\n"`, jsontext.String)
		text := s.Text()
		if got := string(text); got != wantText {
			t.Errorf("Text: got %#q, want %#q", got, wantText)
		}
		if u, err := jsontext.Unquote(string(text)); err != nil {
			t.Errorf("Unquote failed: %v", err)
		} else if got := string(u); got != wantDec {
			t.Errorf("Unquote: got %#q, want %#q", got, wantDec)
		}
	})
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := string(jsontext.Quote(test.input))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestScannerLoc(t *testing.T) {
	type tokPos struct {
		Tok jsontext.Token
		Pos string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{ }", []tokPos{{jsontext.LBrace, "1:0-1"}, {jsontext.RBrace, "1:2-3"}}},
		{`"foo" // bar`, []tokPos{{jsontext.String, "1:0-5"}, {jsontext.LineComment, "1:6-12"}}},
		{"/* ok */\ntrue\n false\n", []tokPos{{jsontext.BlockComment, "1:0-8"}, {jsontext.True, "2:0-4"}, {jsontext.False, "3:1-6"}}},
		{"/* abc */", []tokPos{{jsontext.BlockComment, "1:0-9"}}},
		{"/* ok\n*/\n null", []tokPos{{jsontext.BlockComment, "1:0-2:2"}, {jsontext.Null, "3:1-5"}}},
		{"// first\n[1, /*x*/, 2\n]", []tokPos{
			{jsontext.LineComment, "1:0-2:0"}, {jsontext.LSquare, "2:0-1"}, {jsontext.Integer, "2:1-2"},
			{jsontext.Comma, "2:2-3"}, {jsontext.BlockComment, "2:4-9"}, {jsontext.Comma, "2:9-10"},
			{jsontext.Integer, "2:11-12"}, {jsontext.RSquare, "3:0-1"},
		}},
	}
	for _, tc := range tests {
		var got []tokPos
		s := jsontext.NewScanner(strings.NewReader(tc.input))
		s.AllowComments(true)
		for s.Next() == nil {
			got = append(got, tokPos{s.Token(), s.Location().String()})
		}
		if err := s.Err(); err != nil && err != io.EOF {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\tabc\n"`, "\tabc\n", false},       // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},      // short Unicode escape
		{`"\u"`, ``, true},                    // incomplete Unicode escape
		{`"\u00"`, ``, true},                  // incomplete Unicode escape
		{`"\u00x9"`, "\ufffd", false},         // invalid Unicode escape
		{`"\u019 "`, "\ufffd", false},         // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
	}

	for _, test := range tests {
		got, err := jsontext.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if err == nil && test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
