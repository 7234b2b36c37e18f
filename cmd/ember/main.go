// Package main provides the Ember ML Framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ember-ml/ember/trace"
	"github.com/ember-ml/ember/value"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Ember ML Framework %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Ember ML Framework - Scalar Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run the backpropagation walkthrough")
}

// demo builds the classic L = (a*b + c) * f expression graph, runs the
// backward pass and reports every value and gradient.
func demo() {
	a := value.New(2.0).SetLabel("a")
	b := value.New(-3.0).SetLabel("b")
	c := value.New(10.0).SetLabel("c")
	f := value.New(-2.0).SetLabel("f")

	e := a.Mul(b).SetLabel("e")
	d := e.Add(c).SetLabel("d")
	L := d.Mul(f).SetLabel("L")

	L.Backward()

	fmt.Println("--- Forward Pass ---")
	fmt.Printf("L = (a*b + c) * f = %g\n\n", L.Data())

	fmt.Println("--- Backward Pass (Gradients) ---")
	if err := trace.WriteSummary(os.Stdout, L); err != nil {
		fmt.Fprintf(os.Stderr, "render graph: %v\n", err)
		os.Exit(1)
	}
}
