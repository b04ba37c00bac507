package slug

import (
	"strings"
	"testing"
)

func TestGenerate_LatinTitle(t *testing.T) {
	if got := Generate("Introduction to Go"); got != "introduction-to-go" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerate_CyrillicTitle(t *testing.T) {
	if got := Generate("О компании"); got != "o-kompanii" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerate_CyrillicMultiChar(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Железо", "zhelezo"},
		{"Ёлка", "yolka"},
		{"Юность", "yunost"},
		{"Ящик", "yaschik"},
		{"Объект", "obekt"},
	}
	for _, c := range cases {
		if got := Generate(c.title); got != c.want {
			t.Fatalf("Generate(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestGenerate_SymbolWords(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"R&D Methods", "r-and-d-methods"},
		{"C# Basics", "c-hash-basics"},
		{"C++ Crash Course", "c-plus-plus-crash-course"},
		{"мама@mail", "mama-at-mail"},
	}
	for _, c := range cases {
		if got := Generate(c.title); got != c.want {
			t.Fatalf("Generate(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestGenerate_CollapsesAndTrimsSeparators(t *testing.T) {
	if got := Generate("  Hello --- World!  "); got != "hello-world" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerate_EmptyTitleFallsBack(t *testing.T) {
	got := Generate("")
	if !strings.HasPrefix(got, "lecture-") {
		t.Fatalf("got %q, want lecture-<timestamp> fallback", got)
	}
}

func TestGenerate_UnmappedScriptFallsBack(t *testing.T) {
	got := Generate("日本語")
	if !strings.HasPrefix(got, "lecture-") {
		t.Fatalf("got %q, want lecture-<timestamp> fallback", got)
	}
}

func TestGenerate_SymbolsOnlyFallsBack(t *testing.T) {
	got := Generate("!!! ???")
	if !strings.HasPrefix(got, "lecture-") {
		t.Fatalf("got %q, want lecture-<timestamp> fallback", got)
	}
}

func TestGenerate_TruncatesLongTitles(t *testing.T) {
	got := Generate(strings.Repeat("word ", 40))
	if len(got) > 64 {
		t.Fatalf("len = %d, want <= 64", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("got %q, trailing separator after truncation", got)
	}
}

func TestGenerate_AlwaysValid(t *testing.T) {
	titles := []string{
		"Introduction to Go",
		"О компании",
		"  ---  multiple   separators --- ",
		"C# & C++ @ home #1",
		"Привет, мир!",
		"MiXeD CaSe TITLE",
		strings.Repeat("я", 200),
		"42 is the answer",
	}
	for _, title := range titles {
		got := Generate(title)
		if !IsValid(got) {
			t.Fatalf("Generate(%q) = %q, not a valid slug", title, got)
		}
		if len(got) > 64 {
			t.Fatalf("Generate(%q) = %q, longer than 64", title, got)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"a", "A", "7", "intro", "intro-to-go", "lecture-1", "o-kompanii", "a--b"}
	for _, s := range valid {
		if !IsValid(s) {
			t.Fatalf("IsValid(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "-", "-a", "a-", "-a-", "aب", "has space", "UPPER_SCORE", "dot.name"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Fatalf("IsValid(%q) = true, want false", s)
		}
	}
}
