package pp

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolverQuotedPrefersCurrentDir(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	writeFile(t, dir, "a.h", "current")
	writeFile(t, other, "a.h", "search")

	r := &Resolver{CurrentDir: dir, UserPaths: []string{other}}
	path, err := r.Resolve("a.h", false)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "a.h") {
		t.Errorf("quoted include should try the current directory first, got %s", path)
	}
}

func TestResolverAngledSkipsCurrentDir(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	writeFile(t, dir, "a.h", "current")
	writeFile(t, other, "a.h", "search")

	r := &Resolver{CurrentDir: dir, UserPaths: []string{other}}
	path, err := r.Resolve("a.h", true)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(other, "a.h") {
		t.Errorf("angled include should skip the current directory, got %s", path)
	}
}

func TestResolverMissingFile(t *testing.T) {
	r := &Resolver{}
	if _, err := r.Resolve("nope.h", true); err == nil {
		t.Errorf("expected an error for an unresolvable header")
	}
}

func TestExecuteIncludeSplicesContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "defs.h", "#define FROM_HEADER 7\nheader_text\n")

	src := "#include \"defs.h\"\nFROM_HEADER\n"
	got, book := runPP(t, src, Options{Open: &Resolver{CurrentDir: dir}})
	expectTokens(t, got, "header_text", "7")
	if !book.Empty() {
		t.Errorf("unexpected diagnostics: %v", book.Errors())
	}
}

func TestExecuteIncludeNested(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "outer.h", "#include \"inner.h\"\nouter\n")
	writeFile(t, dir, "inner.h", "inner\n")

	got, _ := runPP(t, "#include \"outer.h\"\nmain\n", Options{Open: &Resolver{CurrentDir: dir}})
	expectTokens(t, got, "inner", "outer", "main")
}

func TestExecuteIncludeCycleDiagnosed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.h", "#include \"b.h\"\na\n")
	writeFile(t, dir, "b.h", "#include \"a.h\"\nb\n")

	got, book := runPP(t, "#include \"a.h\"\n", Options{Open: &Resolver{CurrentDir: dir}})
	if len(book.Errors()) == 0 {
		t.Errorf("expected a cycle diagnostic")
	}
	// The non-cyclic parts still survive.
	expectTokens(t, got, "b", "a")
}

func TestExecuteIncludeMissingDiagnosed(t *testing.T) {
	dir := t.TempDir()
	got, book := runPP(t, "#include \"gone.h\"\nrest\n", Options{Open: &Resolver{CurrentDir: dir}})
	if len(book.Errors()) == 0 {
		t.Errorf("expected a diagnostic for the missing header")
	}
	expectTokens(t, got, "rest")
}
