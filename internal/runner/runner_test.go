package runner_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"stackvm/internal/runner"
	"stackvm/pkg/color"
	"stackvm/pkg/stackvm"
	"strings"
	"testing"
)

func run(t *testing.T, r *runner.Runner, src string) (string, string, error) {
	t.Helper()

	color.EnableColor(false)

	var stdout, stderr bytes.Buffer
	r.Stdin = strings.NewReader(src)
	r.Stdout = &stdout
	r.Stderr = &stderr

	err := r.Run()
	return stdout.String(), stderr.String(), err
}

func TestRunPrints(t *testing.T) {
	src := `// arithmetic
3 4 + print
"ab" "cd" join print
"hello" 1 3 substring print
"A" to_char from_char print
7 2 % 1 == print`

	out, _, err := run(t, &runner.Runner{}, src)
	if err != nil {
		t.Fatal(err)
	}

	expected := "7\nabcd\nel\nA\ntrue\n"
	if out != expected {
		t.Errorf("expected output %q, got %q", expected, out)
	}
}

func TestRunShowStack(t *testing.T) {
	out, _, err := run(t, &runner.Runner{ShowStack: true}, `1 "x" false 0 "y" &&`)
	if err != nil {
		t.Fatal(err)
	}

	expected := "[1, \"x\", false, 0]\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		src      string
		code     stackvm.Code
		position string
	}{
		{"1 +", stackvm.StackUnderflow, "1:3"},
		{"1\n\"1\" ==", stackvm.TypeMismatch, "2:5"},
		{"false \"nope\" assert", stackvm.AssertFailed, "1:14"},
		{"1 frobnicate", stackvm.NotImplemented, "1:3"},
	}

	for _, test := range tests {
		_, stderr, err := run(t, &runner.Runner{}, test.src)
		if err == nil {
			t.Fatalf("%q: expected error", test.src)
		}

		code, ok := stackvm.CodeOf(err)
		if !ok || code != test.code {
			t.Errorf("%q: expected %s, got %v", test.src, test.code, err)
		}
		if !strings.Contains(stderr, "Error at "+test.position) {
			t.Errorf("%q: expected diagnostic at %s, got %q", test.src, test.position, stderr)
		}

		var stopped *runner.StoppedError
		if !errors.As(err, &stopped) {
			t.Fatalf("%q: expected *runner.StoppedError, got %T", test.src, err)
		}
		summary := "execution stopped at " + test.position
		if err.Error() != summary {
			t.Errorf("%q: expected summary %q, got %q", test.src, summary, err.Error())
		}
		if cause := errors.Unwrap(err).Error(); strings.Contains(summary, cause) || !strings.Contains(stderr, cause) {
			t.Errorf("%q: cause %q should appear on stderr only", test.src, cause)
		}
	}
}

func TestRunIllegal(t *testing.T) {
	_, stderr, err := run(t, &runner.Runner{}, `1 "open`)
	if err == nil || !strings.Contains(errors.Unwrap(err).Error(), "illegal") {
		t.Fatalf("expected illegal input error, got %v", err)
	}
	if !strings.Contains(stderr, "illegal") {
		t.Errorf("expected illegal input on stderr, got %q", stderr)
	}
}

func TestRunFileWithReadline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.svm")
	if err := os.WriteFile(path, []byte("readline drop print readline print print"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, &runner.Runner{SourceFile: path}, "line one\n")
	if err != nil {
		t.Fatal(err)
	}

	expected := "line one\nfalse\n\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestRunVerbose(t *testing.T) {
	out, _, err := run(t, &runner.Runner{Verbose: true}, "1 print")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"=== Words ===", "num", "word", "=== Program Output ===", "1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := run(t, &runner.Runner{SourceFile: filepath.Join(t.TempDir(), "none")}, "")
	if err == nil {
		t.Fatal("expected read error")
	}
}
