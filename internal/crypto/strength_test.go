package crypto

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel Label
	}{
		{name: "empty", password: "", wantScore: 0, wantLabel: VeryWeak},
		{name: "short lowercase", password: "abcd", wantScore: 1, wantLabel: VeryWeak},
		{name: "five digits", password: "12345", wantScore: 2, wantLabel: VeryWeak},
		{name: "mixed case eight", password: "abcdEFGH", wantScore: 4, wantLabel: Weak},
		{name: "fifteen lowercase", password: "aaaaaaaaaaaaaaa", wantScore: 5, wantLabel: Moderate},
		{name: "alphanumeric ten", password: "abcDEF1234", wantScore: 5, wantLabel: Moderate},
		{name: "symbol only", password: "!!!!!!!!", wantScore: 4, wantLabel: Weak},
		{name: "eleven all classes", password: "Aa1!aaaaaaa", wantScore: 8, wantLabel: Strong},
		{name: "twelve all classes", password: "Aa1!Bb2@Cc3#", wantScore: 8, wantLabel: Strong},
		{name: "fifteen all classes", password: "Aa1!Bb2@Cc3#Dd4", wantScore: 9, wantLabel: VeryStrong},
		{name: "space counts as other", password: "ab cd", wantScore: 4, wantLabel: Weak},
		{name: "non-ascii is other", password: "pässwörd", wantScore: 5, wantLabel: Moderate},
		{name: "length counts runes", password: "ééééé", wantScore: 3, wantLabel: Weak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Score(%q).Score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Score(%q).Label = %s, want %s", tt.password, got.Label, tt.wantLabel)
			}
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	for _, pw := range []string{"", "hunter2", "Aa1!Bb2@Cc3#"} {
		if a, b := Score(pw), Score(pw); a != b {
			t.Errorf("Score(%q) not deterministic: %+v vs %+v", pw, a, b)
		}
	}
}

func TestLengthScoreBoundaries(t *testing.T) {
	tests := map[int]int{0: 0, 4: 0, 5: 1, 7: 1, 8: 2, 10: 2, 11: 3, 14: 3, 15: 4, 100: 4}
	for n, want := range tests {
		if got := lengthScore(n); got != want {
			t.Errorf("lengthScore(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestLabelFor(t *testing.T) {
	want := []Label{VeryWeak, VeryWeak, VeryWeak, Weak, Weak, Moderate, Moderate, Strong, Strong, VeryStrong}
	for score, label := range want {
		if got := labelFor(score); got != label {
			t.Errorf("labelFor(%d) = %s, want %s", score, got, label)
		}
	}
}

func TestLabelDisplay(t *testing.T) {
	tests := []struct {
		label Label
		name  string
		color string
	}{
		{VeryWeak, "Very Weak", "red"},
		{Weak, "Weak", "yellow"},
		{Moderate, "Moderate", "blue"},
		{Strong, "Strong", "green"},
		{VeryStrong, "Very Strong", "bright green"},
		{Label(9), "Unknown", ""},
	}

	for _, tt := range tests {
		if got := tt.label.String(); got != tt.name {
			t.Errorf("Label(%d).String() = %q, want %q", int(tt.label), got, tt.name)
		}
		if got := tt.label.Color(); got != tt.color {
			t.Errorf("Label(%d).Color() = %q, want %q", int(tt.label), got, tt.color)
		}
	}
}

func TestGeneratedPasswordsScoreConsistently(t *testing.T) {
	// 16 chars with full coverage always reaches the top rating.
	req := GenerationRequest{Length: 16, Policy: Standard, EnforceCoverage: true}
	for i := 0; i < 20; i++ {
		pw, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if got := Score(pw); got.Label != VeryStrong {
			t.Errorf("Score(%q) = %+v, want VeryStrong", pw, got)
		}
	}
}
