package entity

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompetency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "year first with dash", input: "2024-03", want: NewCompetency(2024, time.March)},
		{name: "year first with slash", input: "2024/03", want: NewCompetency(2024, time.March)},
		{name: "month first with dash", input: "03-2024", want: NewCompetency(2024, time.March)},
		{name: "month first with slash", input: "03/2024", want: NewCompetency(2024, time.March)},
		{name: "single digit month", input: "3/2024", want: NewCompetency(2024, time.March)},
		{name: "whitespace around parts", input: "  2024 / 12 ", want: NewCompetency(2024, time.December)},
		{name: "lowest year", input: "01/1900", want: NewCompetency(1900, time.January)},
		{name: "highest year", input: "2100-12", want: NewCompetency(2100, time.December)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompetency(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseCompetency_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"2024",
		"2024-13",
		"00/2024",
		"2024-03-01",
		"march/2024",
		"24/03",
		"2024.03",
		"01-0001",
		"1899-12",
		"2101/01",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCompetency(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedCompetency))
		})
	}
}

func TestDuesRecord_CompetencyLabel(t *testing.T) {
	record := &DuesRecord{Competency: NewCompetency(2023, time.July), Status: DuesStatusPending}

	assert.Equal(t, "07/2023", record.CompetencyLabel())
	assert.True(t, record.IsPending())
	assert.False(t, record.IsPaid())
	assert.Equal(t, "Pendente", record.Status.Label())
}
