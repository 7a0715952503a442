package transform

import (
	"strings"
	"testing"

	"veil/internal/ast"
)

func TestCommentStripperRemovesComments(t *testing.T) {
	prog := parseProgram(t, "// note\nvar a = 1;\n/* block */\nvar b = 2;")
	if _, err := (&CommentStripper{}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, s := range prog.Body {
		if got := ast.LeadingComments(s); len(got) != 0 {
			t.Errorf("statement %d kept comments: %+v", i, got)
		}
	}
	if got := generateCompact(t, prog); got != "var a=1;var b=2;" {
		t.Fatalf("stripped output = %q", got)
	}
}

func TestCommentStripperKeepsBangBanner(t *testing.T) {
	prog := parseProgram(t, "/*! legal text */\nvar a = 1;")
	if _, err := (&CommentStripper{}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	comments := ast.LeadingComments(prog.Body[0])
	if len(comments) != 1 || !strings.HasPrefix(comments[0].Text, "!") {
		t.Fatalf("banner not kept: %+v", comments)
	}
	if got := generateCompact(t, prog); !strings.Contains(got, "/*! legal text */") {
		t.Fatalf("banner missing from output: %q", got)
	}
}

func TestCommentStripperProgramComments(t *testing.T) {
	prog := parseProgram(t, "// dangling\n")
	if _, err := (&CommentStripper{}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(prog.Comments) != 0 {
		t.Fatalf("program comments kept: %+v", prog.Comments)
	}
}
