package core

import "testing"

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"I spent $45 on groceries", "45", true},
		{"I bought coffee for $4.50", "4.5", true},
		{"paid 25.50 for parking", "25.5", true},
		{"received 100", "100", true},
		{"$0.99 app", "0.99", true},
		{"lunch was $12.", "12", true},
		// First match only: the 3 wins even though $20 follows.
		{"split 3 ways, $20 each", "3", true},
		{"no numbers here", "", false},
		{"", "", false},
		{"$", "", false},
	}
	for _, tc := range cases {
		got, err := ExtractAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", tc.in, err)
			}
			if got.String() != tc.out {
				t.Fatalf("%q: expected %s, got %s", tc.in, tc.out, got)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error, got %s", tc.in, got)
		}
	}
}

func TestExtractAmountDeterministic(t *testing.T) {
	const text = "I spent $45 on groceries"
	first, err := ExtractAmount(text)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := ExtractAmount(text)
		if err != nil {
			t.Fatal(err)
		}
		if !again.Equal(first) {
			t.Fatalf("run %d: got %s, want %s", i, again, first)
		}
	}
}
