package markup

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConvertEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if ToText("") != "" {
		t.Errorf("expected ToText('') to be '', is not")
	}
	if FromText("") != EmptyParagraph {
		t.Errorf("expected FromText('') to be the empty-paragraph sentinel, is not")
	}
}

func TestConvertRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	fragment := FromText("Hello World")
	t.Logf("fragment = '%s'", fragment)
	if fragment != "<p>Hello World</p>" {
		t.Errorf("expected a single paragraph, got '%s'", fragment)
	}
	if text := ToText(fragment); text != "Hello World" {
		t.Errorf("round trip returned '%s', should be 'Hello World'", text)
	}
}

func TestConvertLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	fragment := FromText("Line 1\nLine 2")
	if fragment != "<p>Line 1</p><p>Line 2</p>" {
		t.Errorf("expected one paragraph per line, got '%s'", fragment)
	}
	if text := ToText(fragment); text != "Line 1\nLine 2" {
		t.Errorf("round trip returned '%s', should be 'Line 1\\nLine 2'", text)
	}
}

func TestConvertEmptyLinePreserved(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	fragment := FromText("Line 1\n\nLine 3")
	t.Logf("fragment = '%s'", fragment)
	if fragment != "<p>Line 1</p>"+EmptyParagraph+"<p>Line 3</p>" {
		t.Errorf("expected a sentinel paragraph for the empty line, got '%s'", fragment)
	}
	if text := ToText(fragment); text != "Line 1\n\nLine 3" {
		t.Errorf("round trip returned '%s', empty line not preserved", text)
	}
}

func TestConvertBlockEndings(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text := ToText("<h1>Title</h1><ul><li>one</li><li>two</li></ul>")
	if text != "Title\none\ntwo" {
		t.Errorf("expected headings and list items to end lines, got '%s'", text)
	}
}

func TestConvertCollapsesBlankRuns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text := ToText("<p>a</p><br><br><br><br><p>b</p>")
	if text != "a\n\nb" {
		t.Errorf("expected blank runs to collapse to one empty line, got '%s'", text)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, s := range []string{
		"<div>Hello & goodbye</div>",
		`"quoted"`,
		"it's",
	} {
		if u := Unescape(Escape(s)); u != s {
			t.Errorf("Unescape(Escape('%s')) = '%s', should be identity", s, u)
		}
	}
}

func TestConvertDoublyEscaped(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// Doubly-escaped input decodes twice: once in the fragment parser,
	// once in the entity table. Documented behavior, not a defect.
	if text := ToText("<p>&amp;lt;</p>"); text != "<" {
		t.Errorf("expected doubly-escaped input to decode twice, got '%s'", text)
	}
}
