package dip_test

import (
	"net/url"
	"testing"

	"github.com/bundestag-io/dip-client/pkg/dip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *dip.QueryParams
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   dip.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:   "with cursor",
			params: dip.NewQueryParams().WithCursor("AoJwpcu0"),
			expected: url.Values{
				"cursor": []string{"AoJwpcu0"},
			},
		},
		{
			name:   "with date range",
			params: dip.NewQueryParams().WithDateStart("2024-01-01").WithDateEnd("2024-12-31"),
			expected: url.Values{
				"f.datum.start": []string{"2024-01-01"},
				"f.datum.end":   []string{"2024-12-31"},
			},
		},
		{
			name:   "repeated ids become repeated keys",
			params: dip.NewQueryParams().WithIDs("68852", "68853", "68854"),
			expected: url.Values{
				"f.id": []string{"68852", "68853", "68854"},
			},
		},
		{
			name:   "with zuordnung",
			params: dip.NewQueryParams().WithZuordnung("BT"),
			expected: url.Values{
				"f.zuordnung": []string{"BT"},
			},
		},
		{
			name: "generic filter accumulates values",
			params: dip.NewQueryParams().
				WithFilter(dip.ParamVorgang, "12345").
				WithFilter(dip.ParamVorgang, "67890"),
			expected: url.Values{
				"f.vorgang": []string{"12345", "67890"},
			},
		},
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.params.ToValues())
		})
	}
}

func TestQueryParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  *dip.QueryParams
		wantErr bool
	}{
		{
			name:    "empty params are valid",
			params:  dip.NewQueryParams(),
			wantErr: false,
		},
		{
			name: "all known names are valid",
			params: dip.NewQueryParams().
				WithIDs("1").
				WithDateStart("2024-01-01").
				WithDateEnd("2024-12-31").
				WithZuordnung("BT").
				WithFilter(dip.ParamDrucksache, "20/1000").
				WithFilter(dip.ParamPlenarprotokoll, "20/100").
				WithFilter(dip.ParamVorgang, "12345").
				WithFilter(dip.ParamAktivitaet, "67890"),
			wantErr: false,
		},
		{
			name:    "unknown name is rejected",
			params:  dip.NewQueryParams().WithFilter("f.wahlperiode", "20"),
			wantErr: true,
		},
		{
			name:    "nil params are valid",
			params:  nil,
			wantErr: false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.params.Validate()
			if testCase.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, dip.ErrInvalidParameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQueryParams_Clone(t *testing.T) {
	t.Parallel()

	original := dip.NewQueryParams().
		WithCursor("start").
		WithIDs("1", "2")

	clone := original.Clone()
	clone.WithCursor("advanced")
	clone.WithIDs("3")

	assert.Equal(t, "start", original.Cursor)
	assert.Equal(t, []string{"1", "2"}, original.Filters[dip.ParamID])
	assert.Equal(t, "advanced", clone.Cursor)
	assert.Equal(t, []string{"1", "2", "3"}, clone.Filters[dip.ParamID])
}

func TestQueryParams_Clone_Nil(t *testing.T) {
	t.Parallel()

	var params *dip.QueryParams

	clone := params.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone.Cursor)
	assert.Empty(t, clone.Filters)
}

func TestValidateParameterNames(t *testing.T) {
	t.Parallel()

	err := dip.ValidateParameterNames(map[string][]string{
		"cursor": {"abc"},
		"format": {"json"},
	})
	assert.NoError(t, err)

	err = dip.ValidateParameterNames(map[string][]string{
		"f.titel": {"Haushalt"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dip.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "f.titel")
}
