package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/gqlcompose/internal/language"
)

func exampleTree() *Tree {
	address := NewTree()
	address.IncludeScalar("city")
	address.IncludeScalar("zip")

	tree := NewTree()
	tree.IncludeScalar("id")
	tree.IncludeObject("address", address)
	return tree
}

func TestRenderCompact(t *testing.T) {
	got := exampleTree().Render(Compact)
	if want := "{id,address{city,zip}}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderIndented(t *testing.T) {
	got := exampleTree().Render(Indented)
	want := "{\n" +
		"  id\n" +
		"  address {\n" +
		"    city\n" +
		"    zip\n" +
		"  }\n" +
		"}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	tree := exampleTree()
	for _, f := range []Format{Compact, Indented} {
		first := tree.Render(f)
		second := tree.Render(f)
		if first != second {
			t.Fatalf("Render(%s) not stable:\n%q\n%q", f, first, second)
		}
	}
}

func TestRenderCompactDropsEmptyObject(t *testing.T) {
	tree := NewTree()
	tree.IncludeObject("home", NewTree())

	if got, want := tree.Render(Compact), "{}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderIndentedKeepsBlankLineForEmptyObject(t *testing.T) {
	tree := NewTree()
	tree.IncludeObject("home", NewTree())

	// The empty rendering still takes its own line. This matches the
	// original renderer byte for byte; see the Render doc comment.
	if got, want := tree.Render(Indented), "{\n\n}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderCompactSkipsEmptyBetweenFields(t *testing.T) {
	tree := NewTree()
	tree.IncludeScalar("a")
	tree.IncludeObject("home", NewTree())
	tree.IncludeScalar("b")

	if got, want := tree.Render(Compact), "{a,b}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	wantIndented := "{\n  a\n\n  b\n}"
	if got := tree.Render(Indented); got != wantIndented {
		t.Fatalf("Render = %q, want %q", got, wantIndented)
	}
}

func TestRenderNilNestedTreeRendersEmpty(t *testing.T) {
	tree := NewTree()
	tree.IncludeObject("home", nil)

	if got, want := tree.Render(Compact), "{}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderScalarArguments(t *testing.T) {
	tree := NewTree()
	tree.IncludeScalar("items", Arg("page", 1), Arg("pageSize", 50))

	if got, want := tree.Render(Compact), "{items(page:1,pageSize:50)}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if got, want := tree.Render(Indented), "{\n  items(page: 1, pageSize: 50) \n}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderObjectArguments(t *testing.T) {
	friends := NewTree()
	friends.IncludeScalar("name")

	tree := NewTree()
	tree.IncludeObject("friends", friends, Arg("first", 5))

	if got, want := tree.Render(Compact), "{friends(first:5){name}}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	want := "{\n" +
		"  friends (first: 5) {\n" +
		"    name\n" +
		"  }\n" +
		"}"
	if diff := cmp.Diff(want, tree.Render(Indented)); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOmitsNilArguments(t *testing.T) {
	tree := NewTree()
	tree.IncludeScalar("items", Arg("after", nil), Arg("first", 10))

	if got, want := tree.Render(Compact), "{items(first:10)}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}

	tree.IncludeScalar("items", Arg("after", nil))
	if got, want := tree.Render(Compact), "{items}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderEnumWireName(t *testing.T) {
	resolution := NewEnum("ImageResolution", map[string]string{"High": "high"})

	tree := NewTree()
	tree.IncludeScalar("image", Arg("resolution", resolution.Value("High")))
	if got, want := tree.Render(Compact), "{image(resolution:high)}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}

	tree.IncludeScalar("image", Arg("resolution", resolution.Value("Low")))
	if got, want := tree.Render(Compact), "{image(resolution:Low)}"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderedDocumentsParse(t *testing.T) {
	status := NewEnum("Status", map[string]string{"Active": "ACTIVE"})

	members := NewTree()
	members.IncludeScalar("name")
	members.IncludeScalar("joined", Arg("format", "iso8601"))

	tree := NewTree()
	tree.IncludeScalar("id")
	tree.IncludeObject("members", members, Arg("first", 10), Arg("status", status.Value("Active")), Arg("scoreAbove", 1.5))

	for _, f := range []Format{Compact, Indented} {
		doc, err := language.ParseQuery(tree.Render(f))
		require.NoError(t, err, "rendered %s document must parse", f)
		require.Len(t, doc.Operations, 1)
	}
}
