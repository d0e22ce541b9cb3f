package core

// TalkTopic is one fixed keyword choice on the talks view. The pattern is
// a literal regex fragment fed into the shared keyword matcher alongside
// any free-text keywords, so it is written in lower case to match
// lower-cased titles.
type TalkTopic struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Pattern string `json:"pattern"`
}

// talkTopics lists the eight fixed keyword choices in display order. The
// standalone-R pattern is anchored so "r" inside a word does not count;
// only a free-standing r or a terminal r does.
var talkTopics = [8]TalkTopic{
	{Key: "r", Label: "R language", Pattern: " r | r$"},
	{Key: "shiny", Label: "Shiny", Pattern: "shiny"},
	{Key: "tidyverse", Label: "Tidyverse", Pattern: "tidy"},
	{Key: "ml", Label: "Machine learning", Pattern: "machine learning|deep learning"},
	{Key: "viz", Label: "Visualization", Pattern: "visuali[sz]|ggplot"},
	{Key: "repro", Label: "Reproducibility", Pattern: "reproducib"},
	{Key: "education", Label: "Teaching and education", Pattern: "teach|education"},
	{Key: "bio", Label: "Bioinformatics", Pattern: "bioinformatic|genomic"},
}

// TalkTopics returns the fixed keyword choices in display order.
func TalkTopics() []TalkTopic {
	out := make([]TalkTopic, len(talkTopics))
	copy(out, talkTopics[:])
	return out
}

// TopicPattern resolves a fixed-choice key to its pattern. Unknown keys
// report false and contribute nothing to the keyword union.
func TopicPattern(key string) (string, bool) {
	for _, t := range talkTopics {
		if t.Key == key {
			return t.Pattern, true
		}
	}
	return "", false
}
