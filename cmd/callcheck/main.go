package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/callcheck/callcheck/internal/callresolve"
	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/facts"
	"github.com/callcheck/callcheck/internal/tsconfig"
	"github.com/callcheck/callcheck/internal/types"
)

func main() {
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := checkCmd.String("tsconfig", "testdata/tsconfig.json", "path to tsconfig.json")
	listCmd := flag.NewFlagSet("list-intrinsics", flag.ExitOnError)

	if len(os.Args) < 2 {
		fmt.Println("expected 'check' or 'list-intrinsics' subcommands")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		if err := checkCmd.Parse(os.Args[2:]); err != nil {
			fmt.Println("failed to parse check command")
			os.Exit(1)
		}
		if !check(os.Stdout, os.Stderr, *configPath) {
			os.Exit(1)
		}
	case "list-intrinsics":
		if err := listCmd.Parse(os.Args[2:]); err != nil {
			fmt.Println("failed to parse list-intrinsics command")
			os.Exit(1)
		}
		listIntrinsics(os.Stdout)
	default:
		fmt.Println("expected 'check' or 'list-intrinsics' subcommands")
	}
}

func listIntrinsics(stdout io.Writer) {
	reg := callresolve.NewRegistry(stringPrinter{})
	for _, name := range reg.Names() {
		fmt.Fprintln(stdout, name)
	}
}

type stringPrinter struct{}

func (stringPrinter) Print(id types.TypeId) string {
	return fmt.Sprintf("T%d", int(id))
}

// check loads the tsconfig at configPath (for its module-mode setting)
// and drives a small worked example through the engine, rendering any
// diagnostics produced. It reports whether the call resolved cleanly. A
// full parser/checker front end is an external collaborator this driver
// does not implement; it exercises CallType/ResolveCallable directly
// against a hand-built call scenario instead.
func check(stdout, stderr io.Writer, configPath string) bool {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read %s: %s\n", configPath, err)
		return false
	}
	cfg, err := tsconfig.Load(raw)
	if err != nil {
		fmt.Fprintf(stderr, "failed to parse %s: %s\n", configPath, err)
		return false
	}
	fmt.Fprintf(stdout, "module mode: %s (explicit extensions: %v)\n", cfg.Module, cfg.Module.HasExplicitFileExtension())

	store := types.NewStore()
	printer := stringPrinter{}
	ctx := &callresolve.CallContext{
		Store:    store,
		Env:      facts.NewEnvironment(),
		Printer:  printer,
		Stack:    callresolve.NewRecursionGuard(),
		Registry: callresolve.NewRegistry(printer),
	}

	strType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "hello"}})
	fid := store.RegisterFunction(func(id types.FunctionId) *types.FunctionDescriptor {
		return &types.FunctionDescriptor{
			Params:     []types.FuncParam{{Name: "message", Type: strType}},
			ReturnType: strType,
			Behavior:   types.ArrowFunctionBehavior{},
		}
	})
	callee := store.Register(&types.FunctionType{Function: fid, This: types.UseParent{}})

	result, errs := callresolve.CallType(ctx, callee, []callresolve.SynthesisedArgument{{Type: strType}}, callresolve.CallingInput{CallConstant: true})
	if len(errs) > 0 {
		fd := ^uintptr(0) // not a terminal unless stderr is a real file
		if f, ok := stderr.(*os.File); ok {
			fd = f.Fd()
		}
		diagnostic.NewRenderer(stderr, fd, nil).Render(errs)
		return false
	}

	fmt.Fprintf(stdout, "call resolved, return type = %s\n", printer.Print(result.ReturnedType))
	return true
}
