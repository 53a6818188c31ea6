package quiz

import (
	"regexp"
	"strings"
)

type Kind string

const (
	KindTrueFalse      Kind = "TF"
	KindMultipleChoice Kind = "MC"
)

const fieldSeparator = ","

var lineBreak = regexp.MustCompile(`\r?\n`)

// Record is one line of a quiz file.
//
// Fields are comma-joined with no quoting or escaping, so question and choice
// text must not contain a comma.
type Record struct {
	Kind     Kind
	Question string
	// Answer is "T"/"F" for true/false records and the 1-based index of the
	// correct choice for multiple-choice records.
	Answer  string
	Choices []string
}

// ParseRecord decodes a single line. An unknown or missing kind tag decodes as
// true/false, and fields past the end of the line decode as empty strings.
func ParseRecord(line string) Record {
	fields := strings.Split(line, fieldSeparator)

	record := Record{
		Kind:     KindTrueFalse,
		Question: fieldAt(fields, 1),
		Answer:   fieldAt(fields, 2),
	}
	if ParseKind(fields[0]) == KindMultipleChoice {
		record.Kind = KindMultipleChoice
		if len(fields) > 3 {
			record.Choices = fields[3:]
		}
	}
	return record
}

// ParseKind maps a tag to a Kind, ignoring case. It returns "" for anything
// other than TF or MC.
func ParseKind(tag string) Kind {
	switch Kind(strings.ToUpper(tag)) {
	case KindTrueFalse:
		return KindTrueFalse
	case KindMultipleChoice:
		return KindMultipleChoice
	default:
		return ""
	}
}

func (r Record) String() string {
	fields := make([]string, 0, 3+len(r.Choices))
	fields = append(fields, string(r.Kind), r.Question, r.Answer)
	if r.Kind == KindMultipleChoice {
		fields = append(fields, r.Choices...)
	}
	return strings.Join(fields, fieldSeparator)
}

// SplitLines splits file content on "\n" or "\r\n". A trailing line break
// yields a trailing empty line.
func SplitLines(content string) []string {
	return lineBreak.Split(content, -1)
}

func fieldAt(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}
