package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication() Application {
	return NewApplication("Ada Lovelace", "ada@example.com", "555-0100", "Engineer", "Link: example.com/resume")
}

func TestApplication_Accessors(t *testing.T) {
	app := newTestApplication()

	assert.Equal(t, "Ada Lovelace", app.Name())
	assert.Equal(t, "ada@example.com", app.Email())
	assert.Equal(t, "555-0100", app.Phone())
	assert.Equal(t, "Engineer", app.Position())
	assert.Equal(t, "Link: example.com/resume", app.Resume())
}

func TestApplication_DisplayStructured(t *testing.T) {
	details := newTestApplication().Display(DisplayStructured)

	assert.Equal(t, DisplayStructured, details.Format)
	assert.Equal(t, map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"phone":    "555-0100",
		"position": "Engineer",
		"resume":   "Link: example.com/resume",
	}, details.Map())
}

func TestApplication_DisplayText(t *testing.T) {
	details := newTestApplication().Display(DisplayText)

	want := "Name: Ada Lovelace\n" +
		"Email: ada@example.com\n" +
		"Phone: 555-0100\n" +
		"Position Applied: Engineer\n" +
		"Resume: Link: example.com/resume"
	assert.Equal(t, want, details.Text())
	assert.Len(t, details.Lines(), len(RequiredFields))
}

func TestApplication_DisplayKeepsValuesVerbatim(t *testing.T) {
	app := NewApplication("  <b>Ada</b> ", "", "", "", "line1\nline2")
	m := app.Display(DisplayStructured).Map()

	assert.Equal(t, "  <b>Ada</b> ", m[FieldName])
	assert.Equal(t, "", m[FieldEmail])
	assert.Equal(t, "line1\nline2", m[FieldResume])
}

func TestApplication_DisplayIsDeterministic(t *testing.T) {
	first := newTestApplication().Display(DisplayText)
	second := newTestApplication().Display(DisplayText)
	assert.Equal(t, first, second)
}

func TestParseDisplayFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    DisplayFormat
		wantErr bool
	}{
		{in: "structured", want: DisplayStructured},
		{in: " TEXT ", want: DisplayText},
		{in: "html", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDisplayFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingFieldError(t *testing.T) {
	var err error = &MissingFieldError{Field: FieldEmail}

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), `"email"`)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, FieldEmail, missing.Field)
}
