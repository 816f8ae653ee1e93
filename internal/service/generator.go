package service

import (
	"context"
	"fmt"
	"runtime"

	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/sync/errgroup"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

const (
	DefaultLength = 12
	DefaultCount  = 1
	DefaultType   = "standard"

	MaxLength = 1024
	MaxCount  = 1000
)

// GeneratorService handles batch password generation and scoring.
type GeneratorService struct {
	gen        *crypto.Generator
	minEntropy float64
	workers    int
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses
// crypto/rand. When minEntropy is positive, passwords estimated below it carry
// a warning.
func NewGeneratorService(gen *crypto.Generator, minEntropy float64) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{
		gen:        gen,
		minEntropy: minEntropy,
		workers:    runtime.GOMAXPROCS(0),
	}
}

// Generate produces req.Count passwords. Result i always holds generation i.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	settings, policy, err := resolve(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	genReq := crypto.GenerationRequest{
		Length:          settings.Length,
		Policy:          policy,
		EnforceCoverage: settings.Complex,
	}

	results := make([]model.GeneratedPassword, settings.Count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			password, err := s.gen.Generate(genReq)
			if err != nil {
				return fmt.Errorf("generating password %d: %w", i+1, err)
			}
			results[i] = s.describe(i+1, password)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Settings:  settings,
		Passwords: results,
	}, nil
}

// describe attaches the strength rating and entropy estimate to a password.
func (s *GeneratorService) describe(index int, password string) model.GeneratedPassword {
	rating := crypto.Score(password)
	out := model.GeneratedPassword{
		Index:    index,
		Password: password,
		Strength: rating.Label.String(),
		Score:    rating.Score,
		Color:    rating.Label.Color(),
		Entropy:  passwordvalidator.GetEntropy(password),
	}
	if s.minEntropy > 0 {
		if err := passwordvalidator.Validate(password, s.minEntropy); err != nil {
			out.Warning = err.Error()
		}
	}
	return out
}

// resolve applies defaults and validates the batch bounds.
func resolve(req model.GenerateRequest) (model.Settings, crypto.Policy, error) {
	settings := model.Settings{
		Type:    req.Type,
		Length:  req.Length,
		Count:   req.Count,
		Complex: boolOrDefault(req.Complex, true),
	}
	if settings.Type == "" {
		settings.Type = DefaultType
	}
	if settings.Length == 0 {
		settings.Length = DefaultLength
	}
	if settings.Count == 0 {
		settings.Count = DefaultCount
	}

	policy, err := crypto.ParsePolicy(settings.Type)
	if err != nil {
		return model.Settings{}, 0, err
	}
	settings.Type = policy.String()

	if settings.Length < 0 || settings.Length > MaxLength {
		return model.Settings{}, 0, fmt.Errorf("%w: length must be between 1 and %d", crypto.ErrInvalidRequest, MaxLength)
	}
	if settings.Count < 0 || settings.Count > MaxCount {
		return model.Settings{}, 0, fmt.Errorf("%w: count must be between 1 and %d", crypto.ErrInvalidRequest, MaxCount)
	}

	return settings, policy, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
