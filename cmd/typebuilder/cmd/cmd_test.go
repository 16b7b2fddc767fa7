package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.dw1.io/typebuilder/flags"
	"go.dw1.io/typebuilder/internal/report"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		describeJSON = false
		describeCompact = false
		generateOutput = ""
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "DEFAULT_SETTINGS", "ENABLE_MODULO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, w := range []string{"DEFAULT_SETTINGS|ENABLE_MODULO", "CapSpecificModulo", "CapModulo"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected output to contain %q:\n%s", w, out)
		}
	}
}

func TestDescribeJSON(t *testing.T) {
	out, err := run(t, "describe", "--json", "ENABLE_ALL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := report.ParseJSON([]byte(out))
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if r.Expression != "ENABLE_ALL" || len(r.Capabilities) != 24 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestDescribeCompact(t *testing.T) {
	out, err := run(t, "describe", "--compact", "ENABLE_INC_DEC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Count(out, "\n") != 1 || !strings.HasPrefix(out, `{"expression":"ENABLE_INC_DEC"`) {
		t.Fatalf("expected one compact line, got %q", out)
	}
}

func TestDescribeUnknown(t *testing.T) {
	out, err := run(t, "describe", "ENABLE_TELEPORTATION")
	if !errors.Is(err, flags.ErrUnknownFlag) {
		t.Fatalf("expected ErrUnknownFlag, got %v", err)
	}

	if n := strings.Count(out, "ENABLE_TELEPORTATION"); n != 1 {
		t.Fatalf("expected the error to be printed once, got %d times:\n%s", n, out)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	decl := filepath.Join(dir, "units.yaml")
	dst := filepath.Join(dir, "units_gen.go")

	yaml := "package: units\ndimensions:\n  - name: Length\n    exponents: {m: 1}\n  - name: Area\n    exponents: {m: 2}\n"
	if err := os.WriteFile(decl, []byte(yaml), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := run(t, "generate", "-f", decl, "-o", dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(src), "func MulLengthLength[T number.Real](a Length[T], b Length[T]) Area[T] {") {
		t.Fatalf("expected a product helper:\n%s", src)
	}
}
