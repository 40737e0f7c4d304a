package pmml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expenseModel = `<?xml version="1.0" encoding="UTF-8"?>
<PMML xmlns="http://www.dmg.org/PMML-4_4" version="4.4">
	<Header description="next-day total expense"/>
	<DataDictionary numberOfFields="2">
		<DataField name="avg7_total" optype="continuous" dataType="double"/>
		<DataField name="total_expense" optype="continuous" dataType="double"/>
	</DataDictionary>
	<RegressionModel modelName="expense_next_day" functionName="regression">
		<MiningSchema>
			<MiningField name="avg7_total"/>
			<MiningField name="total_expense" usageType="target"/>
		</MiningSchema>
		<RegressionTable intercept="12.5">
			<NumericPredictor name="avg7_total" exponent="1" coefficient="0.98"/>
		</RegressionTable>
	</RegressionModel>
</PMML>`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(expenseModel), "")
	require.NoError(t, err)
	assert.Equal(t, "expense_next_day", m.Name)
	assert.Equal(t, DefaultFeature, m.Feature)
	assert.Equal(t, 12.5, m.Intercept)
	assert.Equal(t, 0.98, m.Coefficient)

	got, err := m.Predict(context.Background(), 100)
	require.NoError(t, err)
	assert.InDelta(t, 110.5, got, 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense.pmml")
	require.NoError(t, os.WriteFile(path, []byte(expenseModel), 0o600))

	m, err := LoadFile(path, DefaultFeature)
	require.NoError(t, err)
	assert.Equal(t, 0.98, m.Coefficient)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.pmml"), DefaultFeature)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not xml", "<PMML><Header></PMML>", "failed to parse PMML"},
		{"no model", `<PMML/>`, "no RegressionModel"},
		{"classification", `<PMML><RegressionModel functionName="classification"/></PMML>`, "unsupported functionName"},
		{"no table", `<PMML><RegressionModel functionName="regression"/></PMML>`, "RegressionTable"},
		{"bad intercept", `<PMML><RegressionModel><RegressionTable intercept="abc"/></RegressionModel></PMML>`, "intercept"},
		{"wrong feature", `<PMML><RegressionModel><RegressionTable intercept="1"><NumericPredictor name="x" coefficient="2"/></RegressionTable></RegressionModel></PMML>`, "no NumericPredictor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), DefaultFeature)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPredictHonoursCancellation(t *testing.T) {
	m := &Model{Intercept: 1, Coefficient: 1, Exponent: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Predict(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPredictNilModel(t *testing.T) {
	var m *Model
	_, err := m.Predict(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotLoaded)
}
