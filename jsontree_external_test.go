package jsontree_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/google/go-cmp/cmp"

	"github.com/d1ced/jsontree"
)

func TestScenarioSerialize(t *testing.T) {
	root := jsontree.NewObject("")
	if err := root.Append(jsontree.NewString("name", "John Doe")); err != nil {
		t.Fatal(err)
	}
	if err := root.Append(jsontree.NewNumber("age", 28)); err != nil {
		t.Fatal(err)
	}

	b := &bytes.Buffer{}
	if err := root.Write(b); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`{`,
		`    "name": "John Doe",`,
		`    "age": 28`,
		`}`,
	}, "\n")
	if b.String() != want {
		t.Errorf("output mismatch:\n%s", diff.LineDiff(b.String(), want))
	}
}

func TestScenarioDeserialize(t *testing.T) {
	root, err := jsontree.Parse([]byte(
		`{"name":"Jane Smith","age":32,"skills":["JavaScript","Python","C++"]}`))
	if err != nil {
		t.Fatal(err)
	}

	age, err := root.Query("age")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := age.AsNumber(); err != nil || v != 32 {
		t.Errorf("age: got %v, %v", v, err)
	}

	skills, err := root.Query("skills")
	if err != nil {
		t.Fatal(err)
	}
	elems, err := skills.AsArray()
	if err != nil {
		t.Fatal(err)
	}
	if len(elems) != 3 {
		t.Fatalf("want 3 skills, got %d", len(elems))
	}
	got, err := skills.Value()
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{"JavaScript", "Python", "C++"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("skills mismatch (-want +got):\n%s", d)
	}
}

func TestScenarioNested(t *testing.T) {
	coords := jsontree.NewObject("coordinates")
	coords.Append(jsontree.NewNumber("lat", 40.7128))
	coords.Append(jsontree.NewNumber("lon", -74.006))
	address := jsontree.NewObject("address")
	address.Append(jsontree.NewString("city", "New York"))
	address.Append(coords)
	root := jsontree.NewObject("")
	root.Append(jsontree.NewString("name", "John Doe"))
	root.Append(address)

	first := &bytes.Buffer{}
	if err := root.Write(first); err != nil {
		t.Fatal(err)
	}
	reparsed, err := jsontree.Parse(first.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	second := &bytes.Buffer{}
	if err := reparsed.Write(second); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("second serialize differs:\n%s",
			diff.LineDiff(second.String(), first.String()))
	}
}

func TestRoundTrip(t *testing.T) {
	inner := jsontree.NewArray("mixed")
	inner.Append(jsontree.NewNull(""))
	inner.Append(jsontree.NewBool("", false))
	inner.Append(jsontree.NewNumber("", -31.2))
	inner.Append(jsontree.NewNumber("", 6.02e23))
	inner.Append(jsontree.NewString("", `escaped \"quote\" kept`))
	root := jsontree.NewObject("")
	root.Append(jsontree.NewNumber("half", 0.5))
	root.Append(jsontree.NewNumber("big", 1e20))
	root.Append(jsontree.NewString("empty", ""))
	root.Append(inner)
	root.Append(jsontree.NewObject("nothing"))

	b := &bytes.Buffer{}
	if err := root.Write(b); err != nil {
		t.Fatal(err)
	}
	back, err := jsontree.Parse(b.Bytes())
	if err != nil {
		t.Fatalf("reparse own output %s: %v", b, err)
	}
	if !jsontree.EqNode(&root, back) {
		t.Errorf("round trip changed the tree:\n%s",
			diff.LineDiff(back.String(), root.String()))
	}
}

func TestParseFile(t *testing.T) {
	root, err := jsontree.ParseFile("testdata/config.json")
	if err != nil {
		t.Fatal(err)
	}
	if root.Total() != 17 {
		t.Errorf("Total: got %d, want 17", root.Total())
	}
	limits, err := root.Query("limits")
	if err != nil {
		t.Fatal(err)
	}
	retries, err := limits.Query("retries")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := retries.AsNumber(); v != 3 {
		t.Errorf("limits.retries: got %v, want 3", v)
	}
	hosts, err := root.Query("hosts")
	if err != nil {
		t.Fatal(err)
	}
	got, err := hosts.Value()
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{"alpha", "beta", "gamma"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("hosts mismatch (-want +got):\n%s", d)
	}
}

func TestWriteFile(t *testing.T) {
	root, err := jsontree.ParseFile("testdata/config.json")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.json")
	if err := root.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	// the fixture is already in canonical layout
	fixture, err := os.ReadFile("testdata/config.json")
	if err != nil {
		t.Fatal(err)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(written), strings.TrimSpace(string(fixture)); got != want {
		t.Errorf("canonical output mismatch:\n%s", diff.LineDiff(got, want))
	}

	back, err := jsontree.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !jsontree.EqNode(root, back) {
		t.Error("file round trip changed the tree")
	}
}

func TestParseFileErr(t *testing.T) {
	if _, err := jsontree.ParseFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file: expected error")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := jsontree.ParseFile(empty); !errors.Is(err, jsontree.ErrEmptyInput) {
		t.Errorf("empty file: got %v, want ErrEmptyInput", err)
	}
}

func TestWriterLayout(t *testing.T) {
	tests := []struct {
		name string
		node jsontree.Node
		want string
	}{
		{"empty object", jsontree.NewObject(""), "{\n}"},
		{"empty array", jsontree.NewArray(""), "[\n]"},
		{"number root", jsontree.NewNumber("", 28), "28"},
		{"negative", jsontree.NewNumber("", -31.2), "-31.2"},
		{"exponent", jsontree.NewNumber("", 1e20), "1e+20"},
		{"string verbatim", jsontree.NewString("", `a\nb`), `"a\nb"`},
		{"null root", jsontree.NewNull(""), "null"},
	}
	for _, test := range tests {
		if got := test.node.String(); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestWriteNilNode(t *testing.T) {
	var n *jsontree.Node
	err := n.Write(io.Discard)
	terr := &jsontree.TypeError{}
	if !errors.As(err, &terr) {
		t.Fatalf("nil write: got %v, want TypeError", err)
	}
	if terr.Got != jsontree.Invalid {
		t.Errorf("nil write: error reports got %s, want Invalid", terr.Got)
	}
	if n.String() != "" {
		t.Errorf("nil String: got %q, want empty", n.String())
	}
}

func TestJSONInterop(t *testing.T) {
	root, err := jsontree.Parse([]byte(`{"a": 1, "b": [true, "x"]}`))
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Fatalf("marshaled output is invalid JSON: %s", data)
	}

	var back jsontree.Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !jsontree.EqNode(root, &back) {
		t.Error("encoding/json round trip changed the tree")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		have string
		want bool
	}{
		{`{}`, true},
		{`{"a": [1, {"b": null}]}`, true},
		{`[1, 2]`, false},
		{`{"a": }`, false},
		{`{"a": "unterminated`, false},
		{``, false},
	}
	for _, test := range tests {
		if got := jsontree.Valid([]byte(test.have)); got != test.want {
			t.Errorf("Valid(%q): got %v, want %v", test.have, got, test.want)
		}
	}
}
