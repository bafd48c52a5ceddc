// Package types holds the semantic-analysis data model (spec §3, §4.1):
// the name newtypes minted during analysis, the runtime Value/Function
// records, and the SemanticInstruction stream emitted to a codegen sink.
// It is distinct from pkg/ast, which is the AST the analyzer consumes;
// ast.Type is reused directly here rather than duplicated, since Go has
// no ownership reason (unlike the Rust source's ast::Type vs
// crate::types::Type split) to keep two parallel type representations.
package types

import "github.com/semcore-lang/semcore/pkg/ast"

// LabelName and InnerValueName are minted by BlockState (§4.2), never
// sourced directly from an AST identifier, so they carry no location.
type LabelName string

type InnerValueName string

// TypeName is the GlobalState.types registry key (§4.3).
type TypeName string

// NameOf is Type.name() from §4.1.
func NameOf(t ast.Type) TypeName { return TypeName(t.Name()) }
