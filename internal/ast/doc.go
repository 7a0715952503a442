// Package ast defines the program tree the transformation pipeline rewrites.
//
// The tree is mutable and owned by exactly one pipeline run at a time; stages
// rewrite it in place or swap subtrees and hand the result forward. Every node
// keeps the byte span of the source region it was parsed from (zero for nodes
// synthesized by transformers), which is what the code generator uses to build
// positional mappings.
package ast
