package mockgen

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantFields []Field
		wantErr    bool
	}{
		{
			name:       "Single field",
			text:       `{"a":"uuid"}`,
			wantFields: []Field{{Name: "a", Tag: "uuid"}},
		},
		{
			name: "Field order preserved",
			text: `{"id":"uuid","email":"email","joined_at":"date:YYYY-MM-DD"}`,
			wantFields: []Field{
				{Name: "id", Tag: "uuid"},
				{Name: "email", Tag: "email"},
				{Name: "joined_at", Tag: "date:YYYY-MM-DD"},
			},
		},
		{
			name:       "Empty object is a valid schema",
			text:       `{}`,
			wantFields: []Field{},
		},
		{
			name:       "Unrecognized tag is accepted",
			text:       `{"x":"definitely-not-a-tag"}`,
			wantFields: []Field{{Name: "x", Tag: "definitely-not-a-tag"}},
		},
		{
			name:    "Not JSON",
			text:    `not json`,
			wantErr: true,
		},
		{
			name:    "Array rejected",
			text:    `[1,2,3]`,
			wantErr: true,
		},
		{
			name:    "Null rejected",
			text:    `null`,
			wantErr: true,
		},
		{
			name:    "Scalar rejected",
			text:    `"uuid"`,
			wantErr: true,
		},
		{
			name:    "Trailing garbage rejected",
			text:    `{"a":"uuid"} trailing`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := ParseSchema(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				var formatErr *SchemaFormatError
				assert.True(t, errors.As(err, &formatErr), "error should be a *SchemaFormatError, got %T", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, Schema(tt.wantFields), schema)
		})
	}
}

func TestParseSchemaNonStringValues(t *testing.T) {
	// Non-string values are lenient: the field parses and its tag falls
	// through to the unknown marker at synthesis time.
	schema, err := ParseSchema(`{"a":42,"b":true,"c":null,"d":{"nested":"string"},"e":[1]}`)
	require.NoError(t, err)
	require.Len(t, schema, 5)

	assert.Equal(t, "42", schema[0].Tag)
	assert.Equal(t, "true", schema[1].Tag)
	assert.Equal(t, "", schema[2].Tag)
	assert.Equal(t, "", schema[3].Tag)
	assert.Equal(t, "", schema[4].Tag)

	gen := NewSeededGenerator(1)
	for _, f := range schema {
		assert.Equal(t, UnknownValue, gen.Value(f.Tag))
	}
}

func TestSchemaMarshalRoundTrip(t *testing.T) {
	schema, err := ParseSchema(`{"id":"uuid","age":"number","name":"string"}`)
	require.NoError(t, err)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"uuid","age":"number","name":"string"}`, string(data))

	reparsed, err := ParseSchema(string(data))
	require.NoError(t, err)
	assert.Equal(t, schema, reparsed)
}

func TestSchemaFieldNames(t *testing.T) {
	schema := Schema{{Name: "b", Tag: "uuid"}, {Name: "a", Tag: "number"}}
	assert.Equal(t, []string{"b", "a"}, schema.FieldNames())
}
