//go:build unit

package queries_test

import (
	"testing"

	"renthub/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected queries.Filter
		errIs    error
	}{
		{name: "empty string defaults to ALL", input: "", expected: queries.FilterAll},
		{name: "ALL", input: "ALL", expected: queries.FilterAll},
		{name: "CURRENT", input: "CURRENT", expected: queries.FilterCurrent},
		{name: "PAST", input: "PAST", expected: queries.FilterPast},
		{name: "FUTURE", input: "FUTURE", expected: queries.FilterFuture},
		{name: "WAITING", input: "WAITING", expected: queries.FilterWaiting},
		{name: "REJECTED", input: "REJECTED", expected: queries.FilterRejected},
		{name: "lowercase accepted", input: "current", expected: queries.FilterCurrent},
		{name: "mixed case accepted", input: "Waiting", expected: queries.FilterWaiting},
		{name: "surrounding whitespace trimmed", input: "  past  ", expected: queries.FilterPast},
		{name: "unknown filter", input: "ONGOING", errIs: queries.ErrInvalidFilter},
		{name: "approved is not a filter", input: "APPROVED", errIs: queries.ErrInvalidFilter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := queries.ParseFilter(tc.input)

			if tc.errIs != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("unknown filter error names the legal set", func(t *testing.T) {
		_, err := queries.ParseFilter("bogus")
		require.Error(t, err)
		for _, legal := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
			assert.Contains(t, err.Error(), legal)
		}
	})
}

func TestNewPage(t *testing.T) {
	cases := []struct {
		name   string
		limit  int32
		offset int32
		errIs  error
	}{
		{name: "valid page", limit: 20, offset: 0},
		{name: "valid page with offset", limit: 5, offset: 40},
		{name: "zero limit", limit: 0, offset: 0, errIs: queries.ErrInvalidPage},
		{name: "negative limit", limit: -1, offset: 0, errIs: queries.ErrInvalidPage},
		{name: "negative offset", limit: 20, offset: -1, errIs: queries.ErrInvalidPage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := queries.NewPage(tc.limit, tc.offset)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.limit, page.Limit)
			assert.Equal(t, tc.offset, page.Offset)
		})
	}
}
