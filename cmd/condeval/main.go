/*
File    : condeval/cmd/condeval/main.go
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gomsbuild/condeval/eval"
	"github.com/gomsbuild/condeval/fsprobe"
	"github.com/gomsbuild/condeval/parser"
	"github.com/gomsbuild/condeval/repl"
	"github.com/gomsbuild/condeval/state"
)

func main() {
	var (
		allowItemLists    = pflag.Bool("allow-item-lists", true, "permit @(ItemType) references")
		allowMetadata     = pflag.Bool("allow-metadata", true, "permit built-in metadata names such as %(Filename) and %(Compile.FullPath)")
		allowCustomMeta   = pflag.Bool("allow-custom-metadata", true, "permit custom (non-built-in) metadata names")
		allowUnknownFuncs = pflag.Bool("allow-undefined-functions", false, "defer unknown function calls to evaluation instead of rejecting them at parse time")
		propertyFlags     = pflag.StringArrayP("property", "p", nil, "define a property as Name=Value (repeatable)")
		expr              = pflag.StringP("condition", "c", "", "evaluate a single condition and exit, instead of starting the REPL")
	)
	pflag.Parse()

	opts := parser.Options(0)
	if *allowItemLists {
		opts |= parser.AllowItemLists
	}
	if *allowMetadata {
		opts |= parser.AllowBuiltInMetadata
	}
	if *allowCustomMeta {
		opts |= parser.AllowCustomMetadata
	}
	if *allowUnknownFuncs {
		opts |= parser.AllowUndefinedFunctions
	}

	st := state.New(fsprobe.New())
	for _, kv := range *propertyFlags {
		name, value, ok := splitAssignment(kv)
		if !ok {
			fmt.Fprintf(os.Stderr, "condeval: ignoring malformed --property %q (want Name=Value)\n", kv)
			continue
		}
		st.SetProperty(name, value)
	}

	if *expr != "" {
		os.Exit(runOnce(*expr, opts, st))
	}

	r := repl.New(opts, st)
	r.Start(os.Stdin, os.Stdout)
}

func runOnce(text string, opts parser.Options, st eval.State) int {
	node, err := parser.Parse(text, opts, func(key string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", key)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "condeval: %v\n", err)
		return 2
	}
	result, err := eval.Evaluate(node, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "condeval: %v\n", err)
		return 2
	}
	fmt.Println(result)
	if result {
		return 0
	}
	return 1
}

func splitAssignment(kv string) (name, value string, ok bool) {
	for i := 0; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], true
		}
	}
	return "", "", false
}
