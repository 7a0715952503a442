package transform

import (
	"strings"

	"veil/internal/ast"
	"veil/internal/pipeline"
)

// CommentStripper removes source comments from the tree. Comments whose
// text starts with "!" are preserved, matching the minifier convention for
// license banners.
type CommentStripper struct{}

func (t *CommentStripper) Name() string { return "comment-stripper" }

func (t *CommentStripper) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StageFinalizing)
}

func (t *CommentStripper) Apply(prog *ast.Program) (*ast.Program, error) {
	prog.Comments = keepBangComments(prog.Comments)
	ast.Walk(prog, func(n ast.Node) bool {
		if s, ok := n.(ast.Stmt); ok {
			ast.SetLeadingComments(s, keepBangComments(ast.LeadingComments(s)))
		}
		return true
	})
	return prog, nil
}

func keepBangComments(comments []ast.Comment) []ast.Comment {
	var kept []ast.Comment
	for _, c := range comments {
		if strings.HasPrefix(c.Text, "!") {
			kept = append(kept, c)
		}
	}
	return kept
}
