package sqlbuilder

import "testing"

func TestInPlaceholders(t *testing.T) {
	q := New(PlaceholderQuestion)
	if got := q.In([]any{1, 2, 3}); got != "(?, ?, ?)" {
		t.Fatalf("question style = %q", got)
	}
	d := New(PlaceholderDollar)
	d.Arg("first")
	if got := d.In([]any{7, 8}); got != "($2, $3)" {
		t.Fatalf("dollar style = %q", got)
	}
	if d.Len() != 3 || d.Args()[2] != 8 {
		t.Fatalf("args = %v", d.Args())
	}
}

func TestItoa(t *testing.T) {
	for n, want := range map[int]string{0: "0", 7: "7", 10: "10", 12345: "12345"} {
		if got := itoa(n); got != want {
			t.Errorf("itoa(%d) = %q", n, got)
		}
	}
}
