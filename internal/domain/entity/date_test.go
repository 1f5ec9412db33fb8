package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Age_FloorsToCalendarYears(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthdate Date
		want      int
	}{
		{name: "birthday earlier this year", birthdate: NewDate(1984, time.March, 6), want: 40},
		{name: "birthday later this year", birthdate: NewDate(1984, time.September, 6), want: 39},
		{name: "birthday today", birthdate: NewDate(1984, time.June, 15), want: 40},
		{name: "birthday tomorrow", birthdate: NewDate(1984, time.June, 16), want: 39},
		{name: "same month earlier day", birthdate: NewDate(1984, time.June, 1), want: 40},
		{name: "born this year", birthdate: NewDate(2024, time.January, 1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.birthdate.Age(now))
		})
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("03/06/1984")
	require.NoError(t, err)
	assert.Equal(t, "03/06/1984", d.String())
	assert.True(t, d.Equal(NewDate(1984, time.March, 6)))
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("1984-03-06")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	raw, err := json.Marshal(NewDate(2012, time.February, 18))
	require.NoError(t, err)
	assert.Equal(t, `"02/18/2012"`, string(raw))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"09/06/2017"`), &d))
	assert.True(t, d.Equal(NewDate(2017, time.September, 6)))

	assert.Error(t, json.Unmarshal([]byte(`"2017-09-06"`), &d))
}

func TestPerson_EffectiveAge_DefaultsToZero(t *testing.T) {
	var p Person
	assert.Equal(t, 0, p.EffectiveAge())

	age := 27
	p.Age = &age
	assert.Equal(t, 27, p.EffectiveAge())
}
