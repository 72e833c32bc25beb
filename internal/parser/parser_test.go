package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullRecord(t *testing.T) {
	input := strings.Join([]string{
		"#Q What planet is known as the Red Planet?",
		"^ Mars",
		"A Venus",
		"B Mars",
		"C Jupiter",
		"D Saturn",
	}, "\n")

	records, counters := Parse(input)
	require.Len(t, records, 1)
	assert.Equal(t, Counters{}, counters)

	record := records[0]
	assert.Equal(t, "What planet is known as the Red Planet?", record.Question)
	assert.Equal(t, []domain.Option{
		{ID: "0", Text: "Venus"},
		{ID: "1", Text: "Mars"},
		{ID: "2", Text: "Jupiter"},
		{ID: "3", Text: "Saturn"},
	}, record.Options)
	assert.Equal(t, "1", record.CorrectAnswer)
}

func TestParseMultipleRecords(t *testing.T) {
	input := strings.Join([]string{
		"#Q First question?",
		"^ Yes",
		"A Yes",
		"B No",
		"",
		"#Q Second question?",
		"^ No",
		"A Yes",
		"B No",
	}, "\n")

	records, _ := Parse(input)
	require.Len(t, records, 2)
	assert.Equal(t, "First question?", records[0].Question)
	assert.Equal(t, "0", records[0].CorrectAnswer)
	assert.Equal(t, "Second question?", records[1].Question)
	assert.Equal(t, "1", records[1].CorrectAnswer)
}

func TestParseInteriorRecordWithoutAnswerIsDropped(t *testing.T) {
	input := strings.Join([]string{
		"#Q Orphan question?",
		"^ Something else",
		"A Only option",
		"#Q Kept question?",
		"^ Yes",
		"A Yes",
	}, "\n")

	records, counters := Parse(input)
	require.Len(t, records, 1)
	assert.Equal(t, "Kept question?", records[0].Question)
	assert.Equal(t, 1, counters.MissingAnswer)
}

func TestParseTrailingRecordDefaultsToFirstOption(t *testing.T) {
	input := strings.Join([]string{
		"#Q Trailing question?",
		"^ Something else",
		"A Only option",
	}, "\n")

	records, counters := Parse(input)
	require.Len(t, records, 1)
	assert.Equal(t, "0", records[0].CorrectAnswer)
	assert.Equal(t, 0, counters.MissingAnswer)
}

func TestParseRecordWithoutOptionsIsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"#Q No options here?",
		"^ Nothing",
		"#Q Real question?",
		"^ Yes",
		"A Yes",
	}, "\n")

	records, counters := Parse(input)
	require.Len(t, records, 1)
	assert.Equal(t, "Real question?", records[0].Question)
	assert.Equal(t, 1, counters.Malformed)
}

func TestParseIgnoresMarkersOutsideRecords(t *testing.T) {
	input := strings.Join([]string{
		"^ Stray answer",
		"A Stray option",
		"some random preamble",
		"#Q Actual question?",
		"^ Yes",
		"A Yes",
		"B No",
	}, "\n")

	records, counters := Parse(input)
	require.Len(t, records, 1)
	assert.Equal(t, Counters{}, counters)
	assert.Len(t, records[0].Options, 2)
}

func TestParseIgnoresUnknownMarkersInsideRecords(t *testing.T) {
	input := strings.Join([]string{
		"#Q Question?",
		"^ Yes",
		"E Not an option marker",
		"A Yes",
	}, "\n")

	records, _ := Parse(input)
	require.Len(t, records, 1)
	assert.Equal(t, []domain.Option{{ID: "0", Text: "Yes"}}, records[0].Options)
}

func TestParseNormalizesQuotes(t *testing.T) {
	input := strings.Join([]string{
		"#Q Who wrote “Hamlet”?",
		"^ Shakespeare",
		"A Shakespeare",
		"B Marlowe",
	}, "\n")

	records, _ := Parse(input)
	require.Len(t, records, 1)
	assert.Equal(t, `Who wrote "Hamlet"?`, records[0].Question)
}

func TestParseInvariants(t *testing.T) {
	input := strings.Join([]string{
		"#Q One?",
		"^ B1",
		"A A1",
		"B B1",
		"#Q Two?",
		"A A2",
		"#Q Three?",
		"^ C3",
		"A A3",
		"B B3",
		"C C3",
		"D D3",
	}, "\n")

	records, _ := Parse(input)
	for _, record := range records {
		assert.NoError(t, record.Validate())
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := strings.Join([]string{
		"#Q Alpha?",
		"^ a",
		"A a",
		"B b",
		"#Q Beta?",
		"^ d",
		"A c",
		"B d",
	}, "\n")

	first, firstCounters := Parse(input)
	second, secondCounters := Parse(input)
	assert.Equal(t, first, second)
	assert.Equal(t, firstCounters, secondCounters)
}

func TestParseFileDropsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "general.txt")
	content := []byte("#Q Inv\xffalid bytes?\n^ Yes\nA Yes\nB No\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	records, _, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Invalid bytes?", records[0].Question)
}

func TestParseFileMissing(t *testing.T) {
	_, _, err := ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInputIO, domainErr.Code)
}
