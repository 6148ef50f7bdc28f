package vcs

import (
	"context"
	"os/exec"
	"slices"
	"testing"
)

func TestParseAuthors(t *testing.T) {
	out := "Zed\tzed@example.com\n" +
		"Ada Lovelace\tada@example.com\n" +
		"ada\tADA@example.com\n" +
		"no email\t\n" +
		"garbage line\n" +
		"Bob\tbob@example.com\r\n"

	got := ParseAuthors(out)
	want := []Author{
		{Name: "Ada Lovelace", Email: "ada@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Zed", Email: "zed@example.com"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("ParseAuthors() = %v, want %v", got, want)
	}
}

func TestWithout(t *testing.T) {
	authors := []Author{{"A", "a@x"}, {"B", "b@x"}}
	got := Without(authors, []string{"A@X"})
	if len(got) != 1 || got[0].Name != "B" {
		t.Errorf("Without() = %v", got)
	}
	if len(authors) != 2 {
		t.Error("Without() modified its input")
	}
}

func TestGitRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	ctx := context.Background()
	git := New(dir)
	steps := [][]string{
		{"init", "-q"},
		{"config", "user.name", "Ada"},
		{"config", "user.email", "ada@example.com"},
		{"commit", "-q", "--allow-empty", "-m", "first"},
		{"commit", "-q", "--allow-empty", "-m", "second", "--author", "Bob <bob@example.com>"},
	}
	for _, args := range steps {
		if _, err := git.run(ctx, args...); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}

	email, ok, err := git.LocalEmail(ctx)
	if err != nil || !ok || email != "ada@example.com" {
		t.Errorf("LocalEmail() = %q, %v, %v", email, ok, err)
	}
	name, ok, err := git.LocalName(ctx)
	if err != nil || !ok || name != "Ada" {
		t.Errorf("LocalName() = %q, %v, %v", name, ok, err)
	}

	authors, err := git.Authors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []Author{{"Ada", "ada@example.com"}, {"Bob", "bob@example.com"}}
	if !slices.Equal(authors, want) {
		t.Errorf("Authors() = %v, want %v", authors, want)
	}
}

func TestMissingBinary(t *testing.T) {
	git := &Git{Dir: t.TempDir(), Binary: "definitely-not-git"}
	if _, _, err := git.LocalEmail(context.Background()); err != ErrGitUnavailable {
		t.Errorf("LocalEmail() error = %v, want ErrGitUnavailable", err)
	}
}
