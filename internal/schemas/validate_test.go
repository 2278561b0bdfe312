package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile_Valid(t *testing.T) {
	content := `{
		"name": "Jordan",
		"summary": "Analyst",
		"experience": [
			{"title": "Data Analyst", "start_date": "2022-06", "end_date": ""}
		],
		"education": [
			{"degree": "BSc Computer Science", "year": 2022}
		],
		"skills": [
			{"name": "Python", "proficiency": 80},
			{"name": "SQL"}
		],
		"certifications": ["AWS Certified Cloud Practitioner"]
	}`

	assert.NoError(t, ValidateProfile([]byte(content)))
}

func TestValidateProfile_EmptyObjectIsValid(t *testing.T) {
	assert.NoError(t, ValidateProfile([]byte(`{}`)))
}

func TestValidateProfile_BadProficiency(t *testing.T) {
	content := `{"skills": [{"name": "Python", "proficiency": 150}]}`

	err := ValidateProfile([]byte(content))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Errors[0].Field, "proficiency")
}

func TestValidateProfile_BadDateFormat(t *testing.T) {
	content := `{"experience": [{"title": "Analyst", "start_date": "June 2022"}]}`

	err := ValidateProfile([]byte(content))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateProfile_MissingRequiredField(t *testing.T) {
	content := `{"experience": [{"organization": "Acme"}]}`

	err := ValidateProfile([]byte(content))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "title")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nope"}`, `{}`)
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
}
