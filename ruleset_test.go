package caddy65_test

import (
	"errors"
	"testing"

	"github.com/alnah/go-caddy65"
)

func TestRules(t *testing.T) {
	t.Parallel()

	infos := caddy65.Rules()
	if len(infos) != 27 {
		t.Fatalf("Rules() returned %d rules, want 27", len(infos))
	}
	if infos[0].Name != "only-comment" || infos[len(infos)-1].Name != "comment-spacing" {
		t.Errorf("catalog order: first %q, last %q", infos[0].Name, infos[len(infos)-1].Name)
	}
	for i, info := range infos {
		if info.Index != i {
			t.Errorf("%s: Index = %d, want %d", info.Name, info.Index, i)
		}
		if info.Alias == "" || info.Group == "" || info.Summary == "" || info.Example == "" {
			t.Errorf("%s: incomplete %+v", info.Name, info)
		}
	}
}

func TestRuleSet(t *testing.T) {
	t.Parallel()

	all := caddy65.AllRules()
	if all.Len() != 27 {
		t.Errorf("AllRules().Len() = %d, want 27", all.Len())
	}
	if caddy65.NoRules().Len() != 0 {
		t.Error("NoRules() is not empty")
	}

	set := caddy65.AllRules()
	if err := set.Disable("comma-spacing"); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if err := set.Disable("HexLiteralFormatting"); err != nil {
		t.Fatalf("Disable(alias) error = %v", err)
	}
	if set.Enabled("comma-spacing") || set.Enabled("hex-literal-formatting") {
		t.Error("disabled rules still enabled")
	}
	if !set.Enabled("commentSpacing") {
		t.Error("Enabled(alias) = false for an enabled rule")
	}
	if set.Len() != 25 {
		t.Errorf("Len() = %d, want 25", set.Len())
	}

	if err := set.Enable("comma-spacing"); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if !set.Enabled("comma-spacing") {
		t.Error("Enable() had no effect")
	}
}

func TestRuleSet_ConfigAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alias string
		name  string
	}{
		{"operatorFormatting", "operator-spacing"},
		{"byteOperatorFormatting", "byte-operator-spacing"},
		{"onlyComment", "only-comment"},
		{"indirectYInstruction", "indirect-y-instruction"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			t.Parallel()

			set := caddy65.AllRules()
			if err := set.Disable(tt.alias); err != nil {
				t.Fatalf("Disable(%q) error = %v", tt.alias, err)
			}
			if set.Enabled(tt.name) {
				t.Errorf("%s still enabled after disabling %q", tt.name, tt.alias)
			}
		})
	}
}

func TestRuleSet_Unknown(t *testing.T) {
	t.Parallel()

	set := caddy65.NoRules()
	if err := set.Enable("no-such-rule"); !errors.Is(err, caddy65.ErrUnknownRuleName) {
		t.Errorf("Enable() error = %v, want ErrUnknownRuleName", err)
	}
	if set.Enabled("no-such-rule") {
		t.Error("Enabled(unknown) = true")
	}
}

func TestRuleSet_Names(t *testing.T) {
	t.Parallel()

	set := caddy65.NoRules()
	for _, name := range []string{"comment-spacing", "trim-leading", "named-label"} {
		if err := set.Enable(name); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"trim-leading", "named-label", "comment-spacing"}
	got := set.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q (execution order)", i, got[i], want[i])
		}
	}
}
