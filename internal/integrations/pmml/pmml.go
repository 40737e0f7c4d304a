// Package pmml loads linear regression models exported as PMML documents and
// serves them as expense predictors.
package pmml

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"
)

// DefaultFeature is the input field the expense model is trained on.
const DefaultFeature = "avg7_total"

// ErrNotLoaded is returned when predicting with a nil model.
var ErrNotLoaded = errors.New("expense model not loaded")

// Model is a single-feature linear regression: intercept + coefficient*x^exponent.
type Model struct {
	Name        string
	Feature     string
	Intercept   float64
	Coefficient float64
	Exponent    float64
}

// LoadFile reads a PMML RegressionModel from disk.
func LoadFile(path, feature string) (*Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to read PMML file %s: %w", path, err)
	}
	return parse(doc, feature)
}

// Parse reads a PMML RegressionModel from raw bytes.
func Parse(raw []byte, feature string) (*Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse PMML: %w", err)
	}
	return parse(doc, feature)
}

func parse(doc *etree.Document, feature string) (*Model, error) {
	if feature == "" {
		feature = DefaultFeature
	}

	model := doc.FindElement("//RegressionModel")
	if model == nil {
		return nil, fmt.Errorf("no RegressionModel found in PMML")
	}
	if fn := model.SelectAttrValue("functionName", "regression"); fn != "regression" {
		return nil, fmt.Errorf("unsupported functionName %q", fn)
	}

	// Only the first table matters for a regression (not classification) model
	table := model.FindElement("./RegressionTable")
	if table == nil {
		return nil, fmt.Errorf("RegressionTable element not found in PMML")
	}

	intercept, err := floatAttr(table, "intercept", "0")
	if err != nil {
		return nil, err
	}

	m := &Model{
		Name:      model.SelectAttrValue("modelName", ""),
		Feature:   feature,
		Intercept: intercept,
	}

	found := false
	for _, p := range table.SelectElements("NumericPredictor") {
		if p.SelectAttrValue("name", "") != feature {
			continue
		}
		if m.Coefficient, err = floatAttr(p, "coefficient", ""); err != nil {
			return nil, err
		}
		if m.Exponent, err = floatAttr(p, "exponent", "1"); err != nil {
			return nil, err
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("no NumericPredictor for field %q", feature)
	}
	return m, nil
}

func floatAttr(el *etree.Element, name, def string) (float64, error) {
	raw := el.SelectAttrValue(name, def)
	if raw == "" {
		return 0, fmt.Errorf("%s: missing %s attribute", el.Tag, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to parse %s: %v", el.Tag, name, err)
	}
	return v, nil
}

// Predict evaluates the regression for one rolling average.
func (m *Model) Predict(ctx context.Context, avgRecent float64) (float64, error) {
	if m == nil {
		return 0, ErrNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	x := avgRecent
	if m.Exponent != 1 {
		x = math.Pow(avgRecent, m.Exponent)
	}
	return m.Intercept + m.Coefficient*x, nil
}
