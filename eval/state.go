/*
File    : condeval/eval/state.go
*/

// Package eval implements the recursive evaluator over condition
// expression trees. Evaluation dispatches on the concrete node type via
// a Go type switch rather than through virtual methods on ast.Node,
// keeping the hot recursive walk off interface dispatch for composite
// kinds (see ast.Node's package doc).
package eval

// Item is a single project item: its identity plus whatever metadata
// the caller's item system attached to it.
type Item struct {
	Identity string
	Metadata map[string]string
}

// PropertyProvider resolves $(Name) property references.
type PropertyProvider interface {
	GetProperty(name string) (string, bool)
}

// ItemProvider resolves @(Type) item-list references.
type ItemProvider interface {
	GetItems(itemType string) ([]Item, bool)
}

// MetadataTable resolves %(Type.Name) and %(Name) metadata references.
// An empty itemType means the ambient metadata of the item currently
// being evaluated (e.g. inside an item-list transform), if any.
type MetadataTable interface {
	GetMetadata(itemType, metadataName string) (string, bool)
}

// FileSystem backs the Exists() condition function. It is a narrow
// non-throwing probe, not a general filesystem abstraction.
type FileSystem interface {
	Exists(path string) bool
}

// LoadedProjectsCache lets Exists() and similar functions short-circuit
// against already-loaded project state instead of touching disk, the
// way an MSBuild-style evaluation host would. A cache with no entry for
// a path simply means the caller falls through to FileSystem.
type LoadedProjectsCache interface {
	IsLoaded(path string) bool
}

// WarningSink receives non-fatal diagnostics by resource key. Evaluate
// itself raises none; the parser delivers its precedence-conflict
// warning through its own parser.WarnFunc, not through this interface.
type WarningSink interface {
	Warn(key string, args ...interface{})
}

// ConditionedPropertyRecorder records the side effect described in
// spec.md: whenever an equality's left side is a bare property
// reference whose expanded value differs from its own unexpanded text,
// the right-hand literal is remembered as one of the values that
// property was conditioned against.
type ConditionedPropertyRecorder interface {
	RecordConditionedProperty(propertyName, value string)
}

// State is everything the evaluator needs from its caller: expansion,
// the external collaborators of spec.md §6, and the conditioned-property
// side channel. It also satisfies ast.ExpansionContext, so any State can
// be passed directly to a node's Try*/GetExpandedValue methods.
type State interface {
	PropertyProvider
	ItemProvider
	MetadataTable
	FileSystem
	LoadedProjectsCache
	WarningSink
	ConditionedPropertyRecorder

	// ExpandIntoString resolves all property/item/metadata references
	// and %-escapes in text into its final string form.
	ExpandIntoString(text string) (string, error)
}
