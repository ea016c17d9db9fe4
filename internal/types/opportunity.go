// Package types provides type definitions for structured data used throughout the opportunity hub.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar-date format used for opportunity deadlines.
const DateLayout = "2006-01-02"

// Wildcard matches every value on a filter axis.
const Wildcard = "All"

// OpportunityType is the kind of listing.
type OpportunityType string

// Opportunity types
const (
	TypeInternship  OpportunityType = "Internship"
	TypeHackathon   OpportunityType = "Hackathon"
	TypeJob         OpportunityType = "Job"
	TypeCompetition OpportunityType = "Competition"
	TypeWorkshop    OpportunityType = "Workshop"
	TypeOther       OpportunityType = "Other"
)

// Category is the subject area of a listing.
type Category string

// Categories
const (
	CategoryAIML     Category = "AI/ML"
	CategoryIT       Category = "IT/Software"
	CategorySpace    Category = "Space/Science"
	CategoryBusiness Category = "Business/Finance"
	CategoryLaw      Category = "Law/Policy"
	CategoryDesign   Category = "Design/Creative"
	CategorySports   Category = "Sports"
	CategoryOther    Category = "Other"
)

// Level is the geographic scope of a listing.
type Level string

// Levels
const (
	LevelState         Level = "State"
	LevelNational      Level = "National"
	LevelInternational Level = "International"
)

// AllTypes returns every opportunity type in display order.
func AllTypes() []OpportunityType {
	return []OpportunityType{TypeInternship, TypeHackathon, TypeJob, TypeCompetition, TypeWorkshop, TypeOther}
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAIML, CategoryIT, CategorySpace, CategoryBusiness,
		CategoryLaw, CategoryDesign, CategorySports, CategoryOther,
	}
}

// AllLevels returns every level from narrowest to widest.
func AllLevels() []Level {
	return []Level{LevelState, LevelNational, LevelInternational}
}

// Valid reports whether t is a known opportunity type.
func (t OpportunityType) Valid() bool {
	for _, v := range AllTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, v := range AllCategories() {
		if v == c {
			return true
		}
	}
	return false
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	for _, v := range AllLevels() {
		if v == l {
			return true
		}
	}
	return false
}

// Opportunity represents one discoverable listing.
type Opportunity struct {
	ID           string          `json:"id" validate:"required"`
	Title        string          `json:"title" validate:"required"`
	Organization string          `json:"organization" validate:"required"`
	Type         OpportunityType `json:"type" validate:"required,oneof=Internship Hackathon Job Competition Workshop Other"`
	Category     Category        `json:"category" validate:"required,opportunity_category"`
	Level        Level           `json:"level" validate:"required,oneof=State National International"`
	Location     string          `json:"location"`
	Deadline     string          `json:"deadline" validate:"required,isodate"`
	IsPaid       bool            `json:"isPaid"`
	IsVerified   bool            `json:"isVerified"`
	URL          string          `json:"url" validate:"required,url"`
	Description  string          `json:"description"`
}

// DeadlineTime parses the deadline as a UTC calendar date.
func (o *Opportunity) DeadlineTime() (time.Time, error) {
	t, err := time.Parse(DateLayout, o.Deadline)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q: %w", o.Deadline, err)
	}
	return t, nil
}

// Expired reports whether the deadline falls before the calendar date of now.
// Unparseable deadlines are never considered expired.
func (o *Opportunity) Expired(now time.Time) bool {
	deadline, err := o.DeadlineTime()
	if err != nil {
		return false
	}
	today, _ := time.Parse(DateLayout, now.Format(DateLayout))
	return deadline.Before(today)
}

// Validate validates the Opportunity using the validator.
func (o *Opportunity) Validate() error {
	return Validator().Struct(o)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the opportunity-specific tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// RegisterValidation only fails on empty tags or reserved names.
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("opportunity_category", func(fl validator.FieldLevel) bool {
			return Category(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("filter_category", func(fl validator.FieldLevel) bool {
			return contains(CategoryOptions(), fl.Field().String())
		})
		// Other is not offered as a choice but still matches listings of that type.
		_ = v.RegisterValidation("filter_type", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == Wildcard || OpportunityType(s).Valid()
		})
		_ = v.RegisterValidation("filter_level", func(fl validator.FieldLevel) bool {
			return contains(LevelOptions(), fl.Field().String())
		})
		validate = v
	})
	return validate
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
