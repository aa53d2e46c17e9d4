package model

// Mistake is one previously failed question kept on the user profile
// until the same prompt is reported solved.
type Mistake struct {
	Prompt  string   `json:"q"`
	Options []string `json:"opts"`
	Answer  int      `json:"ans"`
}

type User struct {
	ID       string
	Name     string
	XP       int
	Mistakes []Mistake
}

// Grade is the level-curve breakdown of a raw XP total.
type Grade struct {
	Level      int
	CurrentXP  int
	RequiredXP int
	Percent    float64
}
