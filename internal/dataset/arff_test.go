package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleARFF = `% Polish companies bankruptcy data
@relation 1year

@attribute Attr1 numeric
@attribute Attr2 numeric
@attribute Attr3 numeric
@attribute class {0,1}

@data
0.20,0.37,1.50,0
0.11,?,0.98,0
-0.35,0.22,0.75,1
`

func TestParseARFF(t *testing.T) {
	table, err := ParseARFF(strings.NewReader(sampleARFF))
	require.NoError(t, err)

	assert.Equal(t, "1year", table.Relation)
	assert.Equal(t, []string{"Attr1", "Attr2", "Attr3"}, table.Attributes)
	assert.Equal(t, 3, table.NumSamples())
	assert.Equal(t, 3, table.NumFeatures())
	assert.Equal(t, 1, table.BankruptCount())

	assert.Equal(t, []int{0, 0, 1}, table.Labels)
	assert.Equal(t, 0.20, table.Features[0][0])
	assert.True(t, math.IsNaN(table.Features[1][1]), "missing cell should parse as NaN")
	assert.Equal(t, -0.35, table.Features[2][0])
}

func TestParseARFF_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "MissingDataSection",
			content: "@relation x\n@attribute Attr1 numeric\n@attribute class {0,1}\n",
		},
		{
			name:    "DataBeforeAttributes",
			content: "@relation x\n@data\n1,0\n",
		},
		{
			name:    "BadLabel",
			content: "@relation x\n@attribute Attr1 numeric\n@attribute class {0,1}\n@data\n0.5,2\n",
		},
		{
			name:    "BadNumericValue",
			content: "@relation x\n@attribute Attr1 numeric\n@attribute class {0,1}\n@data\nabc,0\n",
		},
		{
			name:    "WrongColumnCount",
			content: "@relation x\n@attribute Attr1 numeric\n@attribute class {0,1}\n@data\n0.5,0.3,0\n",
		},
		{
			name:    "MalformedAttribute",
			content: "@relation x\n@attribute Attr1\n@attribute class {0,1}\n@data\n0.5,0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseARFF(strings.NewReader(tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable("testdata/does-not-exist.arff")
	assert.Error(t, err)
}
