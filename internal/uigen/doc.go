// Package uigen compiles annotated UI structs into construction code.
//
// The pipeline consists of:
//   - [ScanSource]: extracts struct fields and //ui: directives via go/ast
//   - [Analyze]: classifies fields, resolves parents, binds layout items
//   - [Generator]: emits the Build functions as formatted Go source
//
// Analysis is a one-shot pass: every invocation builds a fresh entity
// graph and no state survives between runs.
package uigen
