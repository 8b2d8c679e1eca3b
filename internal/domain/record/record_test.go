package record

import (
	"testing"
	"time"
)

func TestAnalyze_Racecar(t *testing.T) {
	p := Analyze("racecar")

	if p.Length() != 7 {
		t.Errorf("expected length 7, got %d", p.Length())
	}
	if !p.IsPalindrome() {
		t.Error("expected racecar to be a palindrome")
	}
	if p.WordCount() != 1 {
		t.Errorf("expected word count 1, got %d", p.WordCount())
	}
	if p.UniqueCharacters() != 4 {
		t.Errorf("expected 4 unique characters, got %d", p.UniqueCharacters())
	}
	if p.Frequency()["r"] != 2 {
		t.Errorf("expected frequency of 'r' to be 2, got %d", p.Frequency()["r"])
	}
}

func TestAnalyze_NoWhitespaceNormalization(t *testing.T) {
	// Case folds, but spaces are not stripped.
	p := Analyze("A man a plan")

	if p.IsPalindrome() {
		t.Error("expected 'A man a plan' to not be a palindrome")
	}
	if p.WordCount() != 4 {
		t.Errorf("expected word count 4, got %d", p.WordCount())
	}
}

func TestAnalyze_CaseInsensitivePalindrome(t *testing.T) {
	p := Analyze("RaceCar")
	if !p.IsPalindrome() {
		t.Error("expected palindrome check to fold case")
	}
}

func TestAnalyze_EmptyString(t *testing.T) {
	p := Analyze("")

	if p.Length() != 0 {
		t.Errorf("expected length 0, got %d", p.Length())
	}
	if !p.IsPalindrome() {
		t.Error("expected empty string to be a trivial palindrome")
	}
	if p.UniqueCharacters() != 0 {
		t.Errorf("expected 0 unique characters, got %d", p.UniqueCharacters())
	}
	if p.WordCount() != 0 {
		t.Errorf("expected 0 words, got %d", p.WordCount())
	}
	if len(p.Frequency()) != 0 {
		t.Errorf("expected empty frequency map, got %v", p.Frequency())
	}
	if len(p.SHA256Hash()) != 64 {
		t.Errorf("expected 64-char hex digest, got %q", p.SHA256Hash())
	}
}

func TestAnalyze_FrequencySumEqualsLength(t *testing.T) {
	inputs := []string{"racecar", "A man a plan", "", "héllo wörld", "  spaced  out  ", "日本語のテキスト"}

	for _, in := range inputs {
		p := Analyze(in)
		sum := 0
		for _, n := range p.Frequency() {
			sum += n
		}
		if sum != p.Length() {
			t.Errorf("input %q: frequency sum %d != length %d", in, sum, p.Length())
		}
	}
}

func TestAnalyze_MultiByteRunes(t *testing.T) {
	p := Analyze("héllo")

	if p.Length() != 5 {
		t.Errorf("expected rune length 5, got %d", p.Length())
	}
	if p.Frequency()["é"] != 1 {
		t.Errorf("expected frequency of 'é' to be 1, got %d", p.Frequency()["é"])
	}
}

func TestAnalyze_CaseSensitiveFrequency(t *testing.T) {
	p := Analyze("Aa")

	if p.UniqueCharacters() != 2 {
		t.Errorf("expected 2 unique characters, got %d", p.UniqueCharacters())
	}
	if p.Frequency()["A"] != 1 || p.Frequency()["a"] != 1 {
		t.Errorf("expected case-sensitive counts, got %v", p.Frequency())
	}
}

func TestAnalyze_CountsWhitespace(t *testing.T) {
	p := Analyze("a b")

	if p.Frequency()[" "] != 1 {
		t.Errorf("expected whitespace counted in frequency map, got %v", p.Frequency())
	}
	if p.UniqueCharacters() != 3 {
		t.Errorf("expected 3 unique characters, got %d", p.UniqueCharacters())
	}
}

func TestFrequency_ReturnsCopy(t *testing.T) {
	p := Analyze("racecar")

	m := p.Frequency()
	m["r"] = 99
	delete(m, "a")

	if p.Frequency()["r"] != 2 {
		t.Errorf("expected snapshot unchanged after caller mutation, got %v", p.Frequency())
	}
	if !p.Contains("a") {
		t.Error("expected 'a' still present after caller deletes it from the copy")
	}
}

func TestDigest_Deterministic(t *testing.T) {
	if Digest("racecar") != Digest("racecar") {
		t.Error("expected digest to be deterministic")
	}
	if Digest("racecar") == Digest("Racecar") {
		t.Error("expected digest to be case-sensitive")
	}
}

func TestNew_IDMatchesDigest(t *testing.T) {
	rec := New("racecar")

	if rec.ID() != Digest("racecar") {
		t.Errorf("expected id %q, got %q", Digest("racecar"), rec.ID())
	}
	if rec.ID() != rec.Properties().SHA256Hash() {
		t.Error("expected id to equal properties.sha256_hash")
	}
	if rec.Value() != "racecar" {
		t.Errorf("expected value stored verbatim, got %q", rec.Value())
	}
	if rec.CreatedAt().IsZero() {
		t.Error("expected created_at to be set")
	}
	if rec.CreatedAt().Location() != time.UTC {
		t.Error("expected created_at in UTC")
	}
}

func TestNew_IdempotentID(t *testing.T) {
	a := New("same content")
	b := New("same content")

	if a.ID() != b.ID() {
		t.Errorf("expected identical ids for identical content, got %q and %q", a.ID(), b.ID())
	}
}

func TestReconstruct_PreservesFields(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	props := ReconstructProperties(3, false, 3, 1, "abc123", map[string]int{"f": 1, "o": 2})

	rec := Reconstruct("abc123", "foo", props, created)

	if rec.ID() != "abc123" || rec.Value() != "foo" {
		t.Errorf("unexpected record: %q %q", rec.ID(), rec.Value())
	}
	if !rec.CreatedAt().Equal(created) {
		t.Errorf("expected created_at %v, got %v", created, rec.CreatedAt())
	}
	if rec.Properties().Length() != 3 {
		t.Errorf("expected length 3, got %d", rec.Properties().Length())
	}
}
