// Package mockgen synthesizes field values from type-tags.
//
// Each tag maps to one kind of fake value. The tag vocabulary is open:
// anything outside the known set synthesizes to the unknown marker instead of
// failing, so a schema with a typo still generates a complete record.
package mockgen

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// UnknownValue is synthesized for any type-tag the generator does not
// recognize. Policy, not an error path.
const UnknownValue = "unknown"

const dateTagPrefix = "date:"

// Synthesized dates fall in this range, inclusive.
var (
	dateRangeStart = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateRangeEnd   = time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// Generator synthesizes record values. Each Generator owns its own fake-data
// source, so seeded generators are reproducible and independent.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a generator backed by a randomly seeded source.
func NewGenerator() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// NewSeededGenerator returns a generator whose name, email, number, and date
// values are reproducible for a given nonzero seed. UUID values stay random.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Value synthesizes one value for a type-tag. Total over all inputs: no tag
// causes an error.
func (g *Generator) Value(tag string) any {
	switch tag {
	case "uuid":
		return uuid.NewString()
	case "string":
		return g.faker.Name()
	case "email":
		return strings.ToLower(g.faker.Email())
	case "number":
		return g.faker.Number(0, 9999)
	}

	if format, ok := strings.CutPrefix(tag, dateTagPrefix); ok {
		return g.date(format)
	}

	return UnknownValue
}

func (g *Generator) date(format string) string {
	d := g.faker.DateRange(dateRangeStart, dateRangeEnd)
	switch format {
	case "YYYY-MM-DD":
		return d.Format("2006-01-02")
	case "YYYY/MM/DD":
		return d.Format("2006/01/02")
	default:
		return d.Format(time.RFC3339)
	}
}
