// Package parser converts marker-delimited trivia corpus text into ordered
// question records. One file per topic, line-oriented:
//
//	#Q <question text>
//	^ <correct answer text>
//	A <option text>
//	B <option text>
//	C <option text>
//	D <option text>
//
// Blank lines and unrecognized markers are ignored.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
)

// maxLineSize bounds a single corpus line. Real corpus lines are short;
// 1 MiB leaves plenty of slack for pathological files.
const maxLineSize = 1 << 20

// Counters reports the records silently filtered out of one file. They feed
// the run summary, never a user-visible error.
type Counters struct {
	Malformed     int // record flushed with zero options
	MissingAnswer int // interior record whose correct answer never resolved
}

// Parser is an explicit state machine over the lines of one corpus file.
// Feed each line in order, then call Finish exactly once. The zero Parser
// is not ready; use New.
type Parser struct {
	active        *domain.QuestionRecord
	pendingAnswer string
	resolved      bool
	counters      Counters
}

func New() *Parser {
	return &Parser{}
}

// Feed consumes one line and returns a completed record when the line
// starts a new question and the previous one flushed cleanly. Records whose
// correct answer never resolved are dropped here and counted.
func (p *Parser) Feed(line string) (*domain.QuestionRecord, bool) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, "#Q"):
		flushed, ok := p.flush()
		p.active = &domain.QuestionRecord{Question: util.CleanText(line[2:])}
		p.pendingAnswer = ""
		p.resolved = false
		return flushed, ok

	case p.active == nil:
		// Markers outside a record are ignored.
		return nil, false

	case strings.HasPrefix(line, "^"):
		p.pendingAnswer = util.CleanText(line[1:])
		return nil, false

	case isOptionMarker(line):
		text := util.CleanText(line[1:])
		opt := domain.Option{ID: strconv.Itoa(len(p.active.Options)), Text: text}
		p.active.Options = append(p.active.Options, opt)
		if p.pendingAnswer != "" && text == p.pendingAnswer {
			p.active.CorrectAnswer = opt.ID
			p.resolved = true
		}
		return nil, false
	}

	return nil, false
}

// Finish flushes the trailing record. Unlike interior records, a trailing
// record with options but no resolved correct answer is kept with the
// answer defaulted to option "0". This asymmetry is inherited behavior,
// kept deliberately; see DESIGN.md.
func (p *Parser) Finish() (*domain.QuestionRecord, bool) {
	if p.active != nil && len(p.active.Options) > 0 && !p.resolved {
		p.active.CorrectAnswer = "0"
		p.resolved = true
	}
	return p.flush()
}

// Counters returns the drop counters accumulated so far.
func (p *Parser) Counters() Counters {
	return p.counters
}

func (p *Parser) flush() (*domain.QuestionRecord, bool) {
	record := p.active
	p.active = nil
	if record == nil {
		return nil, false
	}
	if len(record.Options) == 0 {
		p.counters.Malformed++
		return nil, false
	}
	if !p.resolved {
		p.counters.MissingAnswer++
		return nil, false
	}
	return record, true
}

func isOptionMarker(line string) bool {
	if len(line) < 2 {
		return false
	}
	return line[0] >= 'A' && line[0] <= 'D' && (line[1] == ' ' || line[1] == '\t')
}

// ParseFile reads one corpus file and returns its records in file order.
// Invalid UTF-8 bytes are dropped rather than surfaced; an unreadable file
// is a fatal input error.
func ParseFile(path string) ([]domain.QuestionRecord, Counters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Counters{}, domain.NewInputIOError(fmt.Sprintf("failed to read corpus file %s", path), err)
	}
	records, counters := Parse(strings.ToValidUTF8(string(data), ""))
	return records, counters, nil
}

// Parse runs the state machine over the whole input and collects the
// completed records. Deterministic: identical input yields an identical
// sequence.
func Parse(input string) ([]domain.QuestionRecord, Counters) {
	p := New()
	var records []domain.QuestionRecord

	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if record, ok := p.Feed(scanner.Text()); ok {
			records = append(records, *record)
		}
	}
	if record, ok := p.Finish(); ok {
		records = append(records, *record)
	}
	return records, p.Counters()
}
