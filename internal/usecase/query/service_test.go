package query

import (
	"context"
	"errors"
	"testing"

	"github.com/strdex/strdex/internal/domain"
	"github.com/strdex/strdex/internal/domain/filter"
	domrec "github.com/strdex/strdex/internal/domain/record"
)

// --- Mocks ---

type mockLister struct {
	records []domrec.Record
	err     error
}

func (m *mockLister) List(_ context.Context) ([]domrec.Record, error) {
	return m.records, m.err
}

func makeRecords(values ...string) []domrec.Record {
	records := make([]domrec.Record, 0, len(values))
	for _, v := range values {
		records = append(records, domrec.New(v))
	}
	return records
}

func makeFilter(t *testing.T, palindrome *bool, minLen *int) filter.Filter {
	t.Helper()
	f, err := filter.New(palindrome, minLen, nil, nil, "")
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	return f
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

// --- Tests ---

func TestListFiltered_CombinedConditions(t *testing.T) {
	lister := &mockLister{records: makeRecords("racecar", "noon", "A man a plan", "hi")}
	svc := New(lister)

	// min_length=5 AND is_palindrome=true keeps only racecar.
	f := makeFilter(t, boolPtr(true), intPtr(5))
	matched, err := svc.ListFiltered(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matched) != 1 || matched[0].Value() != "racecar" {
		t.Errorf("expected [racecar], got %d records", len(matched))
	}
}

func TestListFiltered_EmptyFilterReturnsAll(t *testing.T) {
	lister := &mockLister{records: makeRecords("a", "b", "c")}
	svc := New(lister)

	matched, err := svc.ListFiltered(context.Background(), filter.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 3 {
		t.Errorf("expected all 3 records, got %d", len(matched))
	}
}

func TestListFiltered_PreservesInsertionOrder(t *testing.T) {
	lister := &mockLister{records: makeRecords("noon", "kayak", "level")}
	svc := New(lister)

	matched, err := svc.ListFiltered(context.Background(), makeFilter(t, boolPtr(true), nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 3 {
		t.Fatalf("expected 3 records, got %d", len(matched))
	}
	for i, want := range []string{"noon", "kayak", "level"} {
		if matched[i].Value() != want {
			t.Errorf("position %d: expected %q, got %q", i, want, matched[i].Value())
		}
	}
}

func TestListFiltered_ListerError(t *testing.T) {
	listErr := errors.New("READ: permission denied")
	svc := New(&mockLister{err: listErr})

	_, err := svc.ListFiltered(context.Background(), filter.Filter{})
	if !errors.Is(err, listErr) {
		t.Errorf("expected lister error wrapped, got %v", err)
	}
}

func TestListByPhrase_LongerThanMatchesStructuredEquivalent(t *testing.T) {
	records := makeRecords("short", "exactly ten", "a much longer string here")
	svc := New(&mockLister{records: records})
	ctx := context.Background()

	// "longer than 10" must return the same set as structured min_length=11.
	byPhrase, _, err := svc.ListByPhrase(ctx, "strings longer than 10 characters")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	structured, err := svc.ListFiltered(ctx, makeFilter(t, nil, intPtr(11)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(byPhrase) != len(structured) {
		t.Fatalf("phrase returned %d records, structured %d", len(byPhrase), len(structured))
	}
	for i := range byPhrase {
		if byPhrase[i].ID() != structured[i].ID() {
			t.Errorf("position %d: phrase and structured results diverge", i)
		}
	}
}

func TestListByPhrase_SingleWordPalindromes(t *testing.T) {
	records := makeRecords("racecar", "noon noon", "plain")
	svc := New(&mockLister{records: records})

	matched, f, err := svc.ListByPhrase(context.Background(), "all single word palindromic strings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matched) != 1 || matched[0].Value() != "racecar" {
		t.Errorf("expected [racecar], got %d records", len(matched))
	}
	if f.WordCount() == nil || *f.WordCount() != 1 {
		t.Error("expected interpreted filter with word_count=1")
	}
}

func TestListByPhrase_Unrecognized(t *testing.T) {
	svc := New(&mockLister{})

	_, _, err := svc.ListByPhrase(context.Background(), "find strings starting with a")
	if !errors.Is(err, domain.ErrUnrecognizedQuery) {
		t.Errorf("expected ErrUnrecognizedQuery, got %v", err)
	}
}
