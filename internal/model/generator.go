package model

// GenerateRequest represents a batch password generation request.
// Zero values select defaults; Complex is a pointer so an explicit false can be
// told apart from a missing value (nil -> true).
type GenerateRequest struct {
	Length  int    `json:"length" yaml:"length"`
	Type    string `json:"type" yaml:"type"`
	Count   int    `json:"count" yaml:"count"`
	Complex *bool  `json:"complex" yaml:"complex"`
}

// Settings are the effective options a batch was generated with.
type Settings struct {
	Type    string `json:"type" yaml:"type"`
	Length  int    `json:"length" yaml:"length"`
	Count   int    `json:"count" yaml:"count"`
	Complex bool   `json:"complex" yaml:"complex"`
}

// GeneratedPassword is one password of a batch with its strength rating.
type GeneratedPassword struct {
	Index    int     `json:"index" yaml:"index"`
	Password string  `json:"password" yaml:"password"`
	Strength string  `json:"strength" yaml:"strength"`
	Score    int     `json:"score" yaml:"score"`
	Color    string  `json:"color" yaml:"color"`
	Entropy  float64 `json:"entropy_bits" yaml:"entropy_bits"`
	Warning  string  `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// GenerateResponse represents a batch generation response.
type GenerateResponse struct {
	Settings  Settings            `json:"settings" yaml:"settings"`
	Passwords []GeneratedPassword `json:"passwords" yaml:"passwords"`
}

// Last returns the final password of the batch, or "" when it is empty.
func (r GenerateResponse) Last() string {
	if len(r.Passwords) == 0 {
		return ""
	}
	return r.Passwords[len(r.Passwords)-1].Password
}
