package usecase_content

import (
	"strconv"
	"strings"

	"github.com/biofact005-rgb/neetquiz/internal/model"
)

// Uploads are plain TXT files. The first ten lines must carry the
// SOURCE/TYPE/CHAPTER header; question lines look like
//
//	prompt | option1 | option2 | option3 | option4 | answer
//
// with a 1-based answer index. Lines that don't parse are skipped.
const headerScanLines = 10

// ParseTXT turns an uploaded file into a Chapter. The chapter ID is
// left zero; the repository assigns it on upsert.
func ParseTXT(content string) (model.Chapter, error) {
	lines := strings.Split(content, "\n")

	chapter := model.Chapter{}
	for i, line := range lines {
		if i >= headerScanLines {
			break
		}
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "source:"):
			chapter.Source = headerValue(line)
		case strings.Contains(lower, "type:"):
			chapter.Type = headerValue(line)
		case strings.Contains(lower, "chapter:"):
			chapter.Name = headerValue(line)
		}
	}

	if chapter.Source == "" || chapter.Type == "" || chapter.Name == "" {
		return model.Chapter{}, ErrInvalidHeader
	}

	for _, line := range lines {
		if !strings.Contains(line, "|") || strings.Contains(strings.ToUpper(line), "SOURCE:") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 6 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		answer, err := strconv.Atoi(parts[5])
		if err != nil {
			continue
		}
		answer-- // stored zero-based
		if answer < 0 || answer > 3 {
			continue
		}

		chapter.Questions = append(chapter.Questions, model.Question{
			Prompt:  parts[0],
			Options: parts[1:5],
			Answer:  answer,
		})
	}

	return chapter, nil
}

func headerValue(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}
