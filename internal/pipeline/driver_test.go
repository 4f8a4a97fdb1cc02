package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-caddy65/internal/pipeline"
	"github.com/alnah/go-caddy65/internal/rules"
)

func newPipeline(t *testing.T, set rules.Set, obs pipeline.Observer) *pipeline.Pipeline {
	t.Helper()
	cat, err := rules.Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	exec := rules.NewExecutor(cat, rules.DefaultOptions())
	return pipeline.New(exec, pipeline.Options{Rules: set, Observer: obs})
}

// ---------------------------------------------------------------------------
// TestRun - Whole-line formatting with every rule enabled
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, rules.All(), nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"label with instruction", "Loop:NOP\n", "loop: nop\n"},
		{"immediate with comment", "  LDA #$0F ; Load\n", "  lda #$f ; Load\n"},
		{"indexed spacing", "lda  foo ,  x\n", "  lda foo, x\n"},
		{"indirect y", "LDA ( $10 ) ,Y\n", "  lda ($10), y\n"},
		{"indirect x", "lda ($10,X)\n", "  lda ($10, x)\n"},
		{"data directive", ".BYTE $01,$02\n", "  .byte $01, $02\n"},
		{"scope directive", ".proc main\n", ".proc main\n"},
		{"comment at column zero", ";hi\n", "; hi\n"},
		{"indented comment", "   ;hi\n", "  ; hi\n"},
		{"unnamed label alone", ":\n", ":\n"},
		{"unnamed label with instruction", ":  inx\n", ": inx\n"},
		{"branch to unnamed label", "BNE   :-\n", "  bne :-\n"},
		{"expression", "lda #<(foo+1)\n", "  lda #<(foo + 1)\n"},
		{"string kept", ".byte \"a+b, c\"\n", "  .byte \"a+b, c\"\n"},
		{"no final newline", "rts", "  rts"},
		{"blank runs collapse", "nop\n\n\n\nrts\n", "  nop\n\n  rts\n"},
		{"blank line is not indented", "nop\n   \nrts\n", "  nop\n\n  rts\n"},
		{"tabs", "\tjmp\t($1234)\n", "  jmp ($1234)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := p.Run(context.Background(), []byte(tt.input))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := string(out.Text); got != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun_Idempotent - Formatting formatted output changes nothing
// ---------------------------------------------------------------------------

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"; demo",
		".segment \"CODE\"",
		".proc  Main",
		"Start:LDX #$00",
		":\tLDA  Table ,X",
		"\tBEQ :+",
		"\tSTA $0200,X",
		"  INX",
		"  BNE :-",
		":   RTS",
		"Table: .BYTE $48,$49,0",
		"mask = %1010+$F",
		"  AND #$F",
		"",
		"",
		".endproc",
		"",
	}, "\n")

	p := newPipeline(t, rules.All(), nil)
	first, err := p.Run(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	second, err := p.Run(context.Background(), first.Text)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if string(second.Text) != string(first.Text) {
		t.Errorf("output not stable:\nfirst:\n%s\nsecond:\n%s", first.Text, second.Text)
	}
	if second.Stats.Rewritten != 0 {
		t.Errorf("second run rewrote %d lines, want 0", second.Stats.Rewritten)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Preformatted - Marker lines and blocks bypass the rules
// ---------------------------------------------------------------------------

func TestRun_Preformatted(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, rules.All(), nil)

	t.Run("block and single line", func(t *testing.T) {
		t.Parallel()

		src := "; #pre-formatted-start\n  LDA   #1\n; #pre-formatted-end\nNOP ; #pre-formatted\nnop\n"
		want := "; #pre-formatted-start\n  LDA   #1\n; #pre-formatted-end\nNOP ; #pre-formatted\n  nop\n"
		out, err := p.Run(context.Background(), []byte(src))
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if string(out.Text) != want {
			t.Errorf("Run() = %q, want %q", out.Text, want)
		}
		if out.Stats.Passthrough != 4 {
			t.Errorf("Passthrough = %d, want 4", out.Stats.Passthrough)
		}
		if len(out.Warnings) != 0 {
			t.Errorf("Warnings = %v, want none", out.Warnings)
		}
	})

	t.Run("nested blocks", func(t *testing.T) {
		t.Parallel()

		src := "; #pre-formatted-start\n; #pre-formatted-start\n; #pre-formatted-end\n  X  \n; #pre-formatted-end\nNOP\n"
		want := "; #pre-formatted-start\n; #pre-formatted-start\n; #pre-formatted-end\n  X  \n; #pre-formatted-end\n  nop\n"
		out, err := p.Run(context.Background(), []byte(src))
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if string(out.Text) != want {
			t.Errorf("Run() = %q, want %q", out.Text, want)
		}
	})

	t.Run("stray end marker", func(t *testing.T) {
		t.Parallel()

		out, err := p.Run(context.Background(), []byte("; #pre-formatted-end\nNOP\n"))
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if string(out.Text) != "; #pre-formatted-end\n  nop\n" {
			t.Errorf("Run() = %q", out.Text)
		}
		if len(out.Warnings) != 1 || out.Warnings[0].Line != 1 {
			t.Errorf("Warnings = %v, want one on line 1", out.Warnings)
		}
	})

	t.Run("unclosed block", func(t *testing.T) {
		t.Parallel()

		out, err := p.Run(context.Background(), []byte("; #pre-formatted-start\nNOP\n"))
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if string(out.Text) != "; #pre-formatted-start\nNOP\n" {
			t.Errorf("Run() = %q", out.Text)
		}
		if len(out.Warnings) != 1 || out.Warnings[0].Line != 2 {
			t.Errorf("Warnings = %v, want one on line 2", out.Warnings)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRun_RuleSelection - Disabled rules do not run
// ---------------------------------------------------------------------------

func TestRun_RuleSelection(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, rules.All().Without(rules.CommaSpacing), nil)
	out, err := p.Run(context.Background(), []byte(".byte 1 ,2\n"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := string(out.Text); got != "  .byte 1 ,2\n" {
		t.Errorf("Run() = %q, want comma spacing untouched", got)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Errors - Fatal lines
// ---------------------------------------------------------------------------

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, rules.All(), nil)

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{
			name:     "unterminated string",
			input:    "nop\n.byte \"a+b\n",
			wantErr:  rules.ErrUnterminatedQuote,
			wantLine: 2,
		},
		{
			name:     "line too long",
			input:    "nop\n" + strings.Repeat("x", pipeline.MaxLineLength+1) + "\n",
			wantErr:  pipeline.ErrLineTooLong,
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := p.Run(context.Background(), []byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if out != nil {
				t.Errorf("Run() output = %q, want nil", out.Text)
			}
			var lineErr *pipeline.LineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("error %T is not a *LineError", err)
			}
			if lineErr.Line != tt.wantLine {
				t.Errorf("LineError.Line = %d, want %d", lineErr.Line, tt.wantLine)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun_Observer - Trace callbacks
// ---------------------------------------------------------------------------

type recorder struct {
	rules []rules.ID
	lines []int
	pass  []bool
}

func (r *recorder) RuleApplied(_ int, id rules.ID, _ rules.Result, _ rules.Flags) {
	r.rules = append(r.rules, id)
}

func (r *recorder) LineDone(line int, _ []byte, _ rules.Flags, passthrough bool) {
	r.lines = append(r.lines, line)
	r.pass = append(r.pass, passthrough)
}

func TestRun_Observer(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	p := newPipeline(t, rules.All(), rec)
	if _, err := p.Run(context.Background(), []byte("nop\n\n; #pre-formatted\n")); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(rec.lines) != 3 {
		t.Fatalf("LineDone called %d times, want 3", len(rec.lines))
	}
	if rec.pass[0] || rec.pass[1] || !rec.pass[2] {
		t.Errorf("passthrough = %v, want [false false true]", rec.pass)
	}
	// The blank line stops after trim-trailing.
	blank := 0
	for _, id := range rec.rules {
		if id == rules.CommentSpacing {
			blank++
		}
	}
	if blank != 1 {
		t.Errorf("comment-spacing ran %d times, want 1", blank)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Canceled - A canceled context stops the run
// ---------------------------------------------------------------------------

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newPipeline(t, rules.All(), nil)
	out, err := p.Run(ctx, []byte("nop\n"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if out != nil {
		t.Errorf("Run() output = %v, want nil", out)
	}
}
