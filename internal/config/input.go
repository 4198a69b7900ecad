package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carefund/carecalc/internal/domain"
)

// InputParser handles parsing of assessment request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an assessment request from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.AssessmentRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a request document. Structural problems are
// rejected here so the engine only ever sees well-formed requests; the engine
// still enforces its own invariants.
func (ip *InputParser) Parse(data []byte) (*domain.AssessmentRequest, error) {
	var req domain.AssessmentRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// ValidateRequest performs structural validation of a parsed request.
func (ip *InputParser) ValidateRequest(req *domain.AssessmentRequest) error {
	if req.Age <= 0 {
		return fmt.Errorf("age is required")
	}
	if len(req.Assessments) == 0 {
		return fmt.Errorf("domain assessments are required")
	}
	for i, a := range req.Assessments {
		if _, err := domain.ParseCareDomain(string(a.Domain)); err != nil {
			return fmt.Errorf("domain assessment %d: %w", i, err)
		}
	}
	if _, err := domain.ParseCareType(string(req.Financial.CareType)); err != nil {
		return err
	}
	if req.Financial.CapitalAssets.IsNegative() {
		return fmt.Errorf("capital assets cannot be negative")
	}
	if req.Financial.WeeklyIncome.IsNegative() {
		return fmt.Errorf("weekly income cannot be negative")
	}
	if req.Financial.Property != nil && req.Financial.Property.Value.IsNegative() {
		return fmt.Errorf("property value cannot be negative")
	}
	if req.Financial.WeeksSinceAdmission != nil && *req.Financial.WeeksSinceAdmission < 0 {
		return fmt.Errorf("weeks since admission cannot be negative")
	}
	for category, amount := range req.Disregards.Assets {
		if amount.IsNegative() {
			return fmt.Errorf("asset disregard %q cannot be negative", category)
		}
	}
	for category, amount := range req.Disregards.Income {
		if amount.IsNegative() {
			return fmt.Errorf("income disregard %q cannot be negative", category)
		}
	}
	return nil
}
