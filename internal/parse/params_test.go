package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimit(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int
		expectErr bool
	}{
		{name: "Empty uses default", raw: "", expected: DefaultLimit},
		{name: "Lower bound", raw: "1", expected: 1},
		{name: "Upper bound", raw: "100", expected: 100},
		{name: "Whitespace", raw: " 5 ", expected: 5},
		{name: "Zero", raw: "0", expectErr: true},
		{name: "Negative", raw: "-3", expectErr: true},
		{name: "Too large", raw: "101", expectErr: true},
		{name: "Not a number", raw: "ten", expectErr: true},
		{name: "Float", raw: "2.5", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Limit(tc.raw, DefaultLimit, MaxLimit)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSkip(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int
		expectErr bool
	}{
		{name: "Empty", raw: "", expected: 0},
		{name: "Positive", raw: "20", expected: 20},
		{name: "Negative", raw: "-1", expectErr: true},
		{name: "Garbage", raw: "abc", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Skip(tc.raw)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestID(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int64
		expectErr bool
	}{
		{name: "Known", raw: "2", expected: 2},
		{name: "Unknown but numeric", raw: "99", expected: 99},
		{name: "Negative", raw: "-4", expected: -4},
		{name: "Empty", raw: "", expectErr: true},
		{name: "Name instead of id", raw: "hubble", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ID(tc.raw)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
