package lines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_RoundTrip(t *testing.T) {
	for i, name := range Names() {
		p, ok := Position(name)
		require.True(t, ok, name)
		assert.Equal(t, i, p)
		assert.Equal(t, name, Name(p))
	}
	assert.Equal(t, 26, Count)
}

func TestPosition_Normalizes(t *testing.T) {
	p, ok := Position(" sir ")
	require.True(t, ok)
	assert.Equal(t, "SIR", Name(p))

	_, ok = Position("W")
	assert.False(t, ok)
	assert.Equal(t, "", Name(-1))
	assert.Equal(t, "", Name(Count))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{name: "single", in: []string{"A"}, want: []string{"A"}},
		{name: "several out of order", in: []string{"E", "A", "C"}, want: []string{"A", "C", "E"}},
		{name: "numbers and shuttles", in: []string{"GS", "7", "1"}, want: []string{"1", "7", "GS"}},
		{name: "duplicate", in: []string{"L", "L"}, want: []string{"L"}},
		{name: "unknown", in: []string{"A", "W"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.in...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownLine))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Names())
		})
	}
}

func TestMask_SetOperations(t *testing.T) {
	ace, err := Parse("A", "C", "E")
	require.NoError(t, err)
	c, err := Parse("C")
	require.NoError(t, err)

	assert.True(t, ace.Contains(c))
	assert.False(t, c.Contains(ace))
	assert.True(t, ace.Has(MustPosition("E")))
	assert.False(t, ace.Has(MustPosition("B")))
	assert.Equal(t, 3, ace.Len())
	assert.Equal(t, "A-C-E", ace.String())
	assert.Equal(t, ace, c.Union(ace))
	assert.True(t, Mask(0).IsEmpty())
	assert.Equal(t, Count, All().Len())
	assert.Equal(t, Mask(0), Of(Count))
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"A", "C", "E"}, Split("A-C-E"))
	assert.Equal(t, []string{"SIR"}, Split("SIR"))
	assert.Equal(t, []string{"4", "5"}, Split(" 4--5 "))
	assert.Nil(t, Split("  "))
}
