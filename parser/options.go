/*
File    : condeval/parser/options.go
*/
package parser

// Options is a bit flag set enumerating which reference kinds the
// current syntactic position permits (spec.md §3). AllowProperties is
// always required and is OR'd in by Parse/TryParse regardless of what
// the caller passes, since property expansion is legal everywhere a
// condition can appear.
type Options uint8

const (
	AllowProperties Options = 1 << iota
	AllowItemLists
	AllowBuiltInMetadata
	AllowCustomMetadata
	AllowUndefinedFunctions
)

// AllowItemMetadata is the combination that legalizes both built-in and
// custom metadata references.
const AllowItemMetadata = AllowBuiltInMetadata | AllowCustomMetadata

func (o Options) has(flag Options) bool { return o&flag != 0 }

// builtInMetadataNames is the fixed set spec.md §4.4 reserves for
// well-known item metadata; any other name is custom metadata.
var builtInMetadataNames = map[string]bool{
	"Identity":                 true,
	"FullPath":                 true,
	"RootDir":                  true,
	"Filename":                 true,
	"Extension":                true,
	"RelativeDir":              true,
	"Directory":                true,
	"RecursiveDir":             true,
	"ModifiedTime":             true,
	"CreatedTime":              true,
	"AccessedTime":             true,
	"DefiningProjectFullPath":  true,
	"DefiningProjectDirectory": true,
	"DefiningProjectName":      true,
	"DefiningProjectExtension": true,
}

func isBuiltInMetadataName(name string) bool {
	return builtInMetadataNames[name]
}
