package model

import "github.com/google/uuid"

// Question is one multiple-choice item. Options always holds four
// choices; Answer is the zero-based index of the correct one.
type Question struct {
	Prompt  string   `json:"q"`
	Options []string `json:"opts"`
	Answer  int      `json:"ans"`
}

// Chapter is the upload unit: every TXT file overwrites exactly one
// (source, type, chapter) triple.
type Chapter struct {
	ID        uuid.UUID
	Source    string
	Type      string
	Name      string
	Questions []Question
}

// ContentTree is the nested source -> type -> chapter listing served
// to the web app.
type ContentTree map[string]map[string]map[string][]Question
