//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOpportunity() Opportunity {
	return Opportunity{
		ID:           "opp-1",
		Title:        "Cloud Infrastructure Intern",
		Organization: "SkyNet Cloud",
		Type:         TypeInternship,
		Category:     CategoryIT,
		Level:        LevelNational,
		Location:     "San Francisco, CA",
		Deadline:     "2025-05-01",
		IsPaid:       true,
		IsVerified:   true,
		URL:          "https://example.com/internship",
		Description:  "Summer internship.",
	}
}

func TestOpportunity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Opportunity)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *Opportunity) {}},
		{name: "missing title", mutate: func(o *Opportunity) { o.Title = "" }, wantErr: "Title"},
		{name: "unknown type", mutate: func(o *Opportunity) { o.Type = "Bootcamp" }, wantErr: "oneof"},
		{name: "unknown category", mutate: func(o *Opportunity) { o.Category = "Cooking" }, wantErr: "opportunity_category"},
		{name: "unknown level", mutate: func(o *Opportunity) { o.Level = "Galactic" }, wantErr: "oneof"},
		{name: "deadline with time", mutate: func(o *Opportunity) { o.Deadline = "2025-05-01T10:00:00Z" }, wantErr: "isodate"},
		{name: "bad url", mutate: func(o *Opportunity) { o.URL = "not a url" }, wantErr: "url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOpportunity()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOpportunity_Expired(t *testing.T) {
	o := validOpportunity()
	o.Deadline = "2025-05-01"

	assert.False(t, o.Expired(time.Date(2025, 4, 30, 23, 0, 0, 0, time.UTC)))
	assert.False(t, o.Expired(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)), "deadline day itself is still open")
	assert.True(t, o.Expired(time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)))

	o.Deadline = "soon"
	assert.False(t, o.Expired(time.Now()))
}

func TestOpportunity_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(validOpportunity())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{
		"id", "title", "organization", "type", "category", "level",
		"location", "deadline", "isPaid", "isVerified", "url", "description",
	} {
		assert.Contains(t, fields, key)
	}
	assert.Len(t, fields, 12)
}

func TestEnumValidity(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.Valid(), c)
	}
	for _, ty := range AllTypes() {
		assert.True(t, ty.Valid(), ty)
	}
	for _, l := range AllLevels() {
		assert.True(t, l.Valid(), l)
	}
	assert.False(t, Category(Wildcard).Valid())
	assert.False(t, OpportunityType("").Valid())
	assert.False(t, Level("Local").Valid())
}
