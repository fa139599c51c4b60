package domain

import (
	"fmt"
	"strings"
)

// DisplayFormat は確認画面での応募内容の表示形式。
type DisplayFormat string

const (
	// DisplayStructured renders the application as a field→value mapping.
	DisplayStructured DisplayFormat = "structured"
	// DisplayText renders the application as a labelled text block.
	DisplayText DisplayFormat = "text"
)

// ParseDisplayFormat normalises user input into a DisplayFormat.
func ParseDisplayFormat(raw string) (DisplayFormat, error) {
	switch DisplayFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case DisplayStructured:
		return DisplayStructured, nil
	case DisplayText:
		return DisplayText, nil
	}
	return "", fmt.Errorf("unknown display format %q (want %q or %q)", raw, DisplayStructured, DisplayText)
}

func (f DisplayFormat) String() string {
	return string(f)
}

// DetailEntry is one labelled value of a rendered application.
type DetailEntry struct {
	Key   string
	Label string
	Value string
}

// Details は Application を表示用に整形した結果。リクエスト間で状態を持たず、
// 同じ入力からは常に同じ内容が得られる。
type Details struct {
	Format  DisplayFormat
	Entries []DetailEntry
}

// Display は指定フォーマットの表示表現を返す。
func (a Application) Display(format DisplayFormat) Details {
	positionLabel := "Position"
	if format == DisplayText {
		positionLabel = "Position Applied"
	}

	return Details{
		Format: format,
		Entries: []DetailEntry{
			{Key: FieldName, Label: "Name", Value: a.name},
			{Key: FieldEmail, Label: "Email", Value: a.email},
			{Key: FieldPhone, Label: "Phone", Value: a.phone},
			{Key: FieldPosition, Label: positionLabel, Value: a.position},
			{Key: FieldResume, Label: "Resume", Value: a.resume},
		},
	}
}

// Map returns the key→value mapping of the structured representation.
func (d Details) Map() map[string]string {
	out := make(map[string]string, len(d.Entries))
	for _, entry := range d.Entries {
		out[entry.Key] = entry.Value
	}
	return out
}

// Lines returns "Label: value" lines in display order.
func (d Details) Lines() []string {
	lines := make([]string, 0, len(d.Entries))
	for _, entry := range d.Entries {
		lines = append(lines, entry.Label+": "+entry.Value)
	}
	return lines
}

// Text joins Lines with newlines.
func (d Details) Text() string {
	return strings.Join(d.Lines(), "\n")
}
