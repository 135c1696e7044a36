package fetch

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"wai/internal/report"
)

// Extracted is one question pulled out of a source page. ID is empty
// when the page carries no "<PREFIX> n:" label for it.
type Extracted struct {
	ID   string
	Text string
}

// labeledQuestionRE matches lines of the form "SEC 2: How do you ...".
var labeledQuestionRE = regexp.MustCompile(`^([A-Z]{3,4})\s*(\d+)\s*:\s*(.+)$`)

// questionPrefixRE strips a leading "Question 3:" label.
var questionPrefixRE = regexp.MustCompile(`(?i)^question\s*\d*:?\s*`)

// ExtractQuestions reduces a page to text lines and keeps the ones
// that look like framework questions: either a labeled "PREFIX n:"
// line, or free prose ending in a question mark. Duplicates are
// dropped, first occurrence wins.
func ExtractQuestions(page string) []Extracted {
	var questions []Extracted
	for _, line := range textLines(page) {
		if m := labeledQuestionRE.FindStringSubmatch(line); m != nil {
			questions = append(questions, Extracted{
				ID:   m[1] + "-" + m[2],
				Text: strings.TrimSpace(m[3]),
			})
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "question") {
			q := questionPrefixRE.ReplaceAllString(line, "")
			if strings.HasSuffix(q, "?") && len(q) > 10 {
				questions = append(questions, Extracted{Text: q})
			}
		} else if strings.HasSuffix(line, "?") && len(line) > 15 {
			questions = append(questions, Extracted{Text: line})
		}
	}

	seen := make(map[string]bool)
	deduped := questions[:0]
	for _, q := range questions {
		key := strings.ToLower(q.ID)
		if key == "" {
			key = strings.ToLower(q.Text)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, q)
	}
	return deduped
}

// textLines tokenizes the page HTML and returns the normalized,
// non-empty text lines, with script and style content dropped.
func textLines(page string) []string {
	tokenizer := html.NewTokenizer(strings.NewReader(page))
	var lines []string
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return lines
			}
			return lines
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			line := report.NormalizeText(string(tokenizer.Text()))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
}

func skippedTag(name string) bool {
	return name == "script" || name == "style"
}
