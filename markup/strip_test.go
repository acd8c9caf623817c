package markup

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStripTags(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if StripTags("") != "" {
		t.Errorf("expected StripTags('') to be '', is not")
	}
	text := StripTags("<p>Hello <strong>World</strong></p>")
	if text != "Hello World" {
		t.Errorf("StripTags = '%s', should be 'Hello World'", text)
	}
}

func TestStripTagsIncludesScriptBodies(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// Script bodies are text nodes and extracted literally, like
	// textContent in a host document.
	text := StripTags("<p>a</p><script>alert(1)</script>")
	if !strings.Contains(text, "alert(1)") {
		t.Errorf("expected script body as literal text, got '%s'", text)
	}
}

func TestStripTagsMalformed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text := StripTags("<p>un<closed <em>nested</p> stray</em>")
	t.Logf("text = '%s'", text)
	if !strings.Contains(text, "nested") || !strings.Contains(text, "stray") {
		t.Errorf("expected text survival on malformed input, got '%s'", text)
	}
}

func TestIsEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, fragment := range []string{"", EmptyParagraph, "<p>&nbsp;</p>", "<p>   </p>"} {
		if !IsEmpty(fragment) {
			t.Errorf("expected IsEmpty('%s') to be true, is not", fragment)
		}
	}
	if IsEmpty("<p>x</p>") {
		t.Errorf("expected IsEmpty('<p>x</p>') to be false, is not")
	}
}

func TestClean(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cleaned := Clean("<p>Text</p><script>alert(1)</script>")
	t.Logf("cleaned = '%s'", cleaned)
	if !strings.Contains(cleaned, "Text") {
		t.Errorf("expected 'Text' to survive Clean, did not")
	}
	if strings.Contains(cleaned, "script") {
		t.Errorf("expected script element to be removed, was not")
	}
}

func TestCleanCommentsAndWhitespace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cleaned := Clean("<p>a</p> <!-- note\nmore -->\t\t<style type=\"text/css\">p {}</style><p>b</p>")
	if cleaned != "<p>a</p> <p>b</p>" {
		t.Errorf("Clean = '%s', should be '<p>a</p> <p>b</p>'", cleaned)
	}
}
