// Package executor runs a parsed GraphQL operation against a schema and a
// host-supplied Runtime, producing a response tree and a list of located
// errors. Execution proceeds depth by depth rather than field by field:
// every synchronous field at the current depth resolves immediately, every
// asynchronous field is queued, and the whole queue is handed to the
// Runtime's batch hook once per depth.
//
// # Preparation
//
// Before executing anything, ExecuteRequest:
//  1. Selects the operation to run, by name or by uniqueness when the
//     document defines only one.
//  2. Coerces the caller-supplied variables against the operation's
//     variable definitions (values.go). A coercion failure here is a
//     request-level error; execution never starts.
//  3. Resolves the root object type (Query/Mutation/Subscription) and
//     collects its selection set (fields.go), expanding fragments and
//     evaluating @skip/@include along the way.
//
// # Depth-batched execution
//
// Each depth repeats:
//
//	A. Sync expansion. For every selection, compute its argument values and
//	   check schema.Field.Async. A sync field calls Runtime.ResolveSync and
//	   is completed immediately; if the completed value is itself an
//	   object, its subfields are collected and expanded in the same pass
//	   (depth does not increase for purely synchronous descents).
//
//	B. Batch execution. Every async field collected at this depth becomes
//	   one AsyncResolveTask. Runtime.BatchResolveAsync is called exactly
//	   once with the whole set and must return exactly one
//	   AsyncResolveResult per task, in the same order.
//
//	C. Non-Null propagation. A Non-Null field that completes to null (or
//	   errors) nullifies its nearest nullable ancestor instead of just
//	   itself, and any already-queued tasks under the nullified path are
//	   dropped rather than resolved and discarded.
//
//	D. Advance. The subfields gathered while completing this depth's
//	   objects become next depth's frontier.
//
// For an operation whose async fields appear at d distinct depths,
// BatchResolveAsync is called exactly d times, never once per field.
//
// # Value completion
//
// completeValue implements the GraphQL completion rules on top of the
// Runtime's hooks: Non-Null unwraps and recurses, List completes each
// element by index, Leaf defers to Runtime.SerializeLeafValue, Abstract
// (interface/union) defers to Runtime.ResolveType before completing as an
// object, and Object collects and (recursively) expands subfields.
//
// # Errors and partial success
//
// Field errors accumulate as located GraphQLError values (message + response
// path) rather than aborting the request; a Non-Null violation bubbles null
// to the nearest nullable ancestor exactly once, and unrelated branches of
// the response tree complete normally around it. A selection naming a field
// the schema doesn't declare still occupies its response key with null,
// alongside the error recorded for it, rather than being omitted from data.
//
// # Notes
//
//   - schema.Field.Async is the only signal the executor uses to route a
//     field sync vs async; schema construction is responsible for setting
//     it correctly (physical/projection fields false, resolver- or
//     loader-backed fields true).
//   - Fragment type conditions are matched against the concrete object
//     type being resolved, never against an interface or union member list;
//     abstract-type narrowing happens only at completion time, via
//     Runtime.ResolveType, not during field collection.
//   - The fragment-spread recursion guard used during collection is scoped
//     to the current path, not to the whole operation: the same fragment
//     spread twice under unrelated branches of a selection set expands in
//     both, while a fragment spreading itself (directly or through another
//     fragment) still terminates.
//
// See runtime.go for the Runtime contract in detail.
package executor
