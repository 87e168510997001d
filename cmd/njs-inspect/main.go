package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/njs-api/njs-api/binding"
	"github.com/njs-api/njs-api/convert"
	"github.com/njs-api/njs-api/engine/memvm"
	"github.com/njs-api/njs-api/result"
)

func main() {
	var (
		list        = flag.Bool("list", false, "List the demo class bindings and exit")
		parseTok    = flag.String("parse", "", "Parse a unit token against the demo enumeration")
		stringify   = flag.Int("stringify", -1, "Stringify a unit value against the demo enumeration")
		packNum     = flag.String("pack", "", "Show the host representation a native int64 packs to")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	switch {
	case *list:
		listBindings(gaugeClass())

	case *parseTok != "":
		index, found := unitEnum.Parse(*parseTok)
		if !found {
			fmt.Fprintf(os.Stderr, "no enumerator matches %q\n", *parseTok)
			os.Exit(1)
		}
		fmt.Printf("%q -> %d\n", *parseTok, index+unitEnum.Start())

	case *stringify >= 0:
		tok, found := unitEnum.Stringify(*stringify - unitEnum.Start())
		if !found {
			fmt.Fprintf(os.Stderr, "no enumerator with value %d\n", *stringify)
			os.Exit(1)
		}
		fmt.Printf("%d -> %q\n", *stringify, tok)

	case *packNum != "":
		if err := showPack(*packNum); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: njs-inspect -list")
		fmt.Fprintln(os.Stderr, "       njs-inspect -parse <token> | -stringify <value>")
		fmt.Fprintln(os.Stderr, "       njs-inspect -pack <int64>")
		fmt.Fprintln(os.Stderr, "       njs-inspect -i  (interactive mode)")
		os.Exit(1)
	}
}

func listBindings(c *binding.Class) {
	fmt.Printf("Class: %s\n\n", c.Name())
	for _, item := range c.Items() {
		fmt.Printf("  %-6s %s\n", item.Kind, item.Name)
	}
}

// showPack packs a native int64 through the conversion engine and reports
// which host representation it landed in.
func showPack(in string) error {
	n, err := strconv.ParseInt(in, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %q: %w", in, err)
	}

	rt := memvm.NewRuntime(nil)
	ctx := memvm.NewContext(rt)

	v, code := convert.Pack(ctx, n)
	if code != result.Ok {
		fmt.Printf("%d -> %s\n", n, code)
		return nil
	}
	fmt.Printf("%d -> %s (%g)\n", n, v.Type(), v.Number())
	return nil
}
