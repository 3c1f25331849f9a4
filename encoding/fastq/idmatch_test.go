package fastq

import "testing"

func TestIDsMatch(t *testing.T) {
	cases := []struct {
		name1, name2 string
		want         bool
	}{
		{"read1", "read1", true},
		{"", "", true},
		{"read1 1:N:0", "read1 2:N:0", true},
		{"read1/1", "read1/2", true},
		{"read1.1", "read1.2", true},
		{"read1/1", "read1/1", true},
		{"read1", "read2", false},
		{"read1/1", "read2/2", false},
		{"read13", "read12", true}, // heuristic strips one trailing digit from each side symmetrically
		{"read1", "read1/1", false},
		{"read1/3", "read1/1", true},
	}
	for _, c := range cases {
		got := IDsMatch([]byte(c.name1), []byte(c.name2))
		if got != c.want {
			t.Errorf("IDsMatch(%q, %q) = %v, want %v", c.name1, c.name2, got, c.want)
		}
		gotRev := IDsMatch([]byte(c.name2), []byte(c.name1))
		if gotRev != c.want {
			t.Errorf("IDsMatch(%q, %q) = %v, want %v (symmetry)", c.name2, c.name1, gotRev, c.want)
		}
	}
}

func TestIDsMatchReflexive(t *testing.T) {
	for _, name := range []string{"", "a", "read1/1", "read with space/2"} {
		if !IDsMatch([]byte(name), []byte(name)) {
			t.Errorf("IDsMatch(%q, %q) = false, want true", name, name)
		}
	}
}
