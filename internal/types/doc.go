// Package types implements the generic-type core of the static type checker.
//
// The package contains immutable type values and the relations between them:
// IsSuperTypeOf, IsSubTypeOf and Accepts answer in three-valued logic
// (trinary.Logic), so a relation that depends on how a type parameter will be
// substituted can answer Maybe instead of guessing.
//
// Three groups of types live here:
//   - Concrete collaborators: MixedType (top), NeverType (bottom), scalars and
//     their literal constants, ObjectType and ObjectWithoutClassType.
//   - Compound collaborators: UnionType and IntersectionType. Every relation
//     double-dispatches into them when one operand is compound.
//   - Template types: TemplateMixedType and TemplateObjectType, type
//     parameters declared in a TemplateTypeScope with a bound, a variance and
//     a strategy (parameter or argument).
//
// Subtractable types (MixedType, ObjectType, ObjectWithoutClassType and both
// template variants) can be narrowed by excluding a subset. Exclusions only
// grow, by union.
//
// Every value can be flattened to a named-attribute record with ExportState
// and rebuilt with RestoreState; the record package turns those records into
// canonical JSON.
//
// All values are immutable and every relation is a pure function of its
// operands, so the package is safe for concurrent use without locking.
package types
