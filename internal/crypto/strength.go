package crypto

import "unicode/utf8"

// Label is a discrete password strength class.
type Label int

const (
	VeryWeak Label = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

var labelNames = [...]string{"Very Weak", "Weak", "Moderate", "Strong", "Very Strong"}

var labelColors = [...]string{"red", "yellow", "blue", "green", "bright green"}

func (l Label) String() string {
	if l < VeryWeak || l > VeryStrong {
		return "Unknown"
	}
	return labelNames[l]
}

// Color is the display color name output layers use for the label.
func (l Label) Color() string {
	if l < VeryWeak || l > VeryStrong {
		return ""
	}
	return labelColors[l]
}

// StrengthRating is the result of scoring a password.
type StrengthRating struct {
	Label Label
	Score int
}

// Score rates a password by length and character variety. It is a heuristic
// classification, not an entropy estimate.
func Score(password string) StrengthRating {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}

	score := lengthScore(utf8.RuneCountInString(password))
	if hasLower {
		score++
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasOther {
		score += 2
	}

	return StrengthRating{Label: labelFor(score), Score: score}
}

func lengthScore(n int) int {
	switch {
	case n <= 4:
		return 0
	case n <= 7:
		return 1
	case n <= 10:
		return 2
	case n <= 14:
		return 3
	default:
		return 4
	}
}

func labelFor(score int) Label {
	switch {
	case score <= 2:
		return VeryWeak
	case score <= 4:
		return Weak
	case score <= 6:
		return Moderate
	case score <= 8:
		return Strong
	default:
		return VeryStrong
	}
}
