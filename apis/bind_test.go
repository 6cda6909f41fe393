package apis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFalsyJSON(t *testing.T) {

	var testCases = map[string]struct {
		Body     string
		Expected bool
	}{
		"Empty":        {Body: "", Expected: true},
		"Whitespace":   {Body: " \n\t", Expected: true},
		"Null":         {Body: "null", Expected: true},
		"False":        {Body: "false", Expected: true},
		"Zero":         {Body: "0", Expected: true},
		"Zero float":   {Body: "0.0", Expected: true},
		"Empty string": {Body: `""`, Expected: true},
		"True":         {Body: "true", Expected: false},
		"Number":       {Body: "7", Expected: false},
		"String":       {Body: `"x"`, Expected: false},
		"Empty object": {Body: "{}", Expected: false},
		"Empty array":  {Body: "[]", Expected: false},
		"Malformed":    {Body: "{", Expected: false},
	}

	for name, testCase := range testCases {

		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Expected, isFalsyJSON([]byte(testCase.Body)))
		})
	}
}
