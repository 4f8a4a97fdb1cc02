package caddy65_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-caddy65"
)

// Example formats a short source buffer with the default rules.
func Example() {
	f, err := caddy65.NewFormatter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := f.Format(context.Background(), []byte("Loop:NOP\nlda  foo ,  x\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%q\n", res.Output)
	// Output: "loop: nop\n  lda foo, x\n"
}

// Example_ruleSet disables one rule.
func Example_ruleSet() {
	set := caddy65.AllRules()
	if err := set.Disable("comma-spacing"); err != nil {
		fmt.Println("error:", err)
		return
	}

	f, err := caddy65.NewFormatter(caddy65.WithRules(set))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := f.Format(context.Background(), []byte(".byte 1 ,2\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%q\n", res.Output)
	// Output: "  .byte 1 ,2\n"
}

// Example_preformatted keeps a marked block as written.
func Example_preformatted() {
	f, err := caddy65.NewFormatter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	src := "; #pre-formatted-start\nLDA   #1\n; #pre-formatted-end\nLDA   #1\n"
	res, err := f.Format(context.Background(), []byte(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(res.Output))
	fmt.Println(len(res.Warnings), "warnings")
	// Output:
	// ; #pre-formatted-start
	// LDA   #1
	// ; #pre-formatted-end
	//   lda #1
	// 0 warnings
}

// Example_warnings shows a non-fatal finding.
func Example_warnings() {
	f, err := caddy65.NewFormatter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := f.Format(context.Background(), []byte("; #pre-formatted-end\nNOP\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range res.Warnings {
		fmt.Printf("line %d: %s\n", w.Line, w.Message)
	}
	// Output: line 1: "#pre-formatted-end" without a matching "#pre-formatted-start"
}

// Example_rules lists the first entries of the catalog.
func Example_rules() {
	for _, r := range caddy65.Rules()[:3] {
		fmt.Println(r.Name)
	}
	// Output:
	// only-comment
	// trim-leading
	// trim-trailing
}
