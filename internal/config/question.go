package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

// QuestionConfig controls how interview questions are produced.
// Mode "generative" asks the LLM for one adaptive question per call;
// mode "bank" serves a static batch from the built-in catalog.
type QuestionConfig struct {
	Mode           string
	TotalQuestions int
}

var (
	questionConfig *QuestionConfig
	questionOnce   sync.Once
)

func LoadQuestionConfig() *QuestionConfig {
	questionOnce.Do(func() {
		questionConfig = &QuestionConfig{
			Mode:           getenvDefault("QUESTION_MODE", "generative"),
			TotalQuestions: getenvInt("QUESTION_COUNT", 5),
		}
	})
	return questionConfig
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: %s=%q is not a positive integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}
