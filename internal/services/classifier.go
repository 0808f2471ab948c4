package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-chest-screening/internal/models"
)

var ErrInvalidConfidence = errors.New("invalid confidence value")

// Default classification policy.
const (
	DefaultThreshold      = 0.6
	DefaultPneumoniaLabel = "PNEUMONIA"
	DefaultTBLabel        = "TUBERCULOSIS"
)

// ConfidenceScale says how a bare number from the inference backend is read.
// A trailing "%" always marks a percentage.
type ConfidenceScale string

// Confidence scales
const (
	ScalePercent  ConfidenceScale = "percent"  // "92" means 0.92
	ScaleFraction ConfidenceScale = "fraction" // "0.92" means 0.92
)

// ParseConfidence normalises a percentage-formatted confidence ("92%" or "92")
// to the unit interval.
func ParseConfidence(raw string) (float64, error) {
	return ParseConfidenceScale(raw, ScalePercent)
}

// ParseConfidenceScale normalises a confidence read with the given scale.
func ParseConfidenceScale(raw string, scale ConfidenceScale) (float64, error) {
	s := strings.TrimSpace(raw)
	percent := strings.HasSuffix(s, "%")
	if percent {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidConfidence
	}
	if percent || scale != ScaleFraction {
		v /= 100
	}
	if v < 0 || v > 1 {
		return 0, ErrInvalidConfidence
	}
	return v, nil
}

// ThresholdClassifier turns a raw inference into a screening outcome.
// An answer is Positive only when the label names the screened disease and
// the confidence reaches the threshold.
type ThresholdClassifier struct {
	threshold float64
	scale     ConfidenceScale
	labels    map[models.DiseaseType]string
}

// ClassifierOpt configures a ThresholdClassifier.
type ClassifierOpt func(*ThresholdClassifier)

// WithConfidenceScale sets how bare confidence numbers are read. Unknown
// scales keep the percent default.
func WithConfidenceScale(scale ConfidenceScale) ClassifierOpt {
	return func(c *ThresholdClassifier) {
		if scale == ScaleFraction {
			c.scale = ScaleFraction
		}
	}
}

// NewThresholdClassifier creates a classifier. Empty labels fall back to the defaults.
func NewThresholdClassifier(threshold float64, pneumoniaLabel, tbLabel string, opts ...ClassifierOpt) *ThresholdClassifier {
	if pneumoniaLabel == "" {
		pneumoniaLabel = DefaultPneumoniaLabel
	}
	if tbLabel == "" {
		tbLabel = DefaultTBLabel
	}
	c := &ThresholdClassifier{
		threshold: threshold,
		scale:     ScalePercent,
		labels: map[models.DiseaseType]string{
			models.DiseasePneumonia: normalizeLabel(pneumoniaLabel),
			models.DiseaseTB:        normalizeLabel(tbLabel),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the outcome and the normalised confidence.
func (c *ThresholdClassifier) Classify(category models.DiseaseType, label, confidence string) (models.Outcome, float64, error) {
	expected, ok := c.labels[category]
	if !ok {
		return "", 0, ErrUnsupportedDiseaseType
	}

	v, err := ParseConfidenceScale(confidence, c.scale)
	if err != nil {
		return "", 0, err
	}

	if normalizeLabel(label) == expected && v >= c.threshold {
		return models.OutcomePositive, v, nil
	}
	return models.OutcomeNegative, v, nil
}

func normalizeLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
