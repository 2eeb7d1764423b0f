package main

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"
)

var (
	testDir = os.DirFS("testdata")
	inOut   = func() map[string]string {
		m := make(map[string]string)
		panicErr(fs.WalkDir(testDir, ".", func(path string, d fs.DirEntry, err error) error {
			parts := strings.Split(path, ".")
			if len(parts) == 3 && parts[1] == "in" {
				m[path] = strings.Join([]string{parts[0], "out.txt"}, ".")
			}
			return err
		}))
		return m
	}()
	// traced lists the golden files run with -trace.
	traced = map[string]bool{"mu.in.txt": true}
)

func panicErr(err error) {
	if err != nil {
		panic(err)
	}
}

func TestGolden(t *testing.T) {
	if len(inOut) == 0 {
		t.Fatal("no golden files found")
	}
	for in, out := range inOut {
		t.Run(in, func(t *testing.T) {
			src, err := fs.ReadFile(testDir, in)
			if err != nil {
				t.Fatal(err)
			}
			want, err := fs.ReadFile(testDir, out)
			if err != nil {
				t.Fatal(err)
			}
			var got bytes.Buffer
			r := newRunner(&got, &got, 1000, traced[in])
			r.runAll(programsFromFile(in, src), false)
			if !bytes.Equal(got.Bytes(), want) {
				t.Errorf("%s does not match output:\n`%s`", out, got.Bytes())
			}
		})
	}
}

func TestSamples(t *testing.T) {
	programs, err := loadPrograms(samples)
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) == 0 {
		t.Fatal("no sample programs")
	}
	var diag bytes.Buffer
	r := newRunner(io.Discard, &diag, 1000, false)
	if failed := r.runAll(programs, true); failed != 0 {
		t.Errorf("%d samples failed:\n%s", failed, diag.String())
	}
}

func TestCheckReportsMismatch(t *testing.T) {
	programs := []Program{
		{Name: "wrong", Source: `(\x:Unit. x)`, Want: "unit"},
		{Name: "should-fail", Source: "unit", Fails: true},
		{Name: "unchecked", Source: "unit"},
		{Name: "should-pass", Source: `(\x:Unit. y)`, Want: "unit"},
		{Name: "ok", Source: `((\x:Unit. x) unit)`, Want: "unit"},
	}
	var diag bytes.Buffer
	r := newRunner(io.Discard, &diag, 1000, false)
	if failed := r.runAll(programs, true); failed != 3 {
		t.Errorf("failed = %d, want 3\n%s", failed, diag.String())
	}
	for _, name := range []string{"wrong:", "should-fail:", "should-pass:"} {
		if !strings.Contains(diag.String(), name) {
			t.Errorf("diagnostics do not mention %s\n%s", name, diag.String())
		}
	}
}

func TestCheckSkipsProgramsWithoutExpectation(t *testing.T) {
	programs := programsFromFile("f", []byte("((\\x:Unit. x) unit)\n(\\x:Unit. y)\n"))
	var diag bytes.Buffer
	r := newRunner(io.Discard, &diag, 1000, false)
	if failed := r.runAll(programs, true); failed != 0 {
		t.Errorf("failed = %d, want 0\n%s", failed, diag.String())
	}
}

func TestStepLimitIsReported(t *testing.T) {
	var out, diag bytes.Buffer
	r := newRunner(&out, &diag, 1, false)
	_, err := r.run(`((\f:(Unit -> Unit). (f unit)) (\x:Unit. x))`)
	if err == nil {
		t.Fatal("expected the step limit to stop evaluation")
	}
	if want := "evaluation stopped after 1 steps: step limit reached\n"; diag.String() != want {
		t.Errorf("diagnostics %q, want %q", diag.String(), want)
	}
}

func TestIndexOverflowDoesNotStopTheRun(t *testing.T) {
	argTy := strings.Repeat("(Unit -> ", 100) + "Unit" + strings.Repeat(")", 100)
	body := strings.Repeat(`(\x:Unit. `, 200) + "g" + strings.Repeat(")", 200)
	arg := strings.Repeat(`(\u:Unit. `, 100) + "a" + strings.Repeat(")", 100)
	programs := []Program{
		{Name: "deep", Source: `(\a:Unit. ((\g:` + argTy + ". " + body + ") " + arg + "))"},
		{Name: "id", Source: `((\x:Unit. x) unit)`, Want: "unit"},
	}
	var out, diag bytes.Buffer
	r := newRunner(&out, &diag, 1000, false)
	r.runAll(programs, false)
	if want := "evaluation stopped after 0 steps: term nested too deeply to reduce"; !strings.HasPrefix(diag.String(), want) {
		t.Errorf("diagnostics %q, want prefix %q", diag.String(), want)
	}
	if !strings.HasSuffix(out.String(), "After renaming: unit\n") {
		t.Errorf("the program after the overflow did not run:\n%s", out.String())
	}
}

func TestLoadPrograms(t *testing.T) {
	programs, err := loadPrograms([]byte("programs:\n  - name: id\n    source: '(\\x:Unit. x)'\n    want: '(\\x:Unit. x)'\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) != 1 || programs[0].Source != `(\x:Unit. x)` || programs[0].Want != `(\x:Unit. x)` {
		t.Errorf("got %+v", programs)
	}
	if _, err := loadPrograms([]byte("programs:\n  - name: empty\n")); err == nil {
		t.Error("expected an error for a program without source")
	}
	if _, err := loadPrograms([]byte("programs: [")); err == nil {
		t.Error("expected a YAML error")
	}
}

func TestProgramsFromFile(t *testing.T) {
	got := programsFromFile("f", []byte("unit\n\n  (\\x:Unit. x)  \n"))
	if len(got) != 2 || got[0].Source != "unit" || got[1].Source != `(\x:Unit. x)` || got[1].Name != "f:2" {
		t.Errorf("got %+v", got)
	}
}
