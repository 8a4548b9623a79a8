package app

import (
	"os"
	"time"

	"github.com/sprintslides/sprintslides-backend/internal/platform/envutil"
)

type Config struct {
	Port string

	GroqAPIKey  string
	GroqBaseURL string
	Models      []string
	Temperature float64

	// CandidateTimeout bounds each individual model attempt.
	CandidateTimeout time.Duration

	// PersistenceEnabled is derived from POSTGRES_HOST being set; the API
	// runs stateless without it.
	PersistenceEnabled bool
}

func LoadConfig() Config {
	return Config{
		Port:        envutil.String("PORT", "8000"),
		GroqAPIKey:  envutil.String("GROQ_API_KEY", ""),
		GroqBaseURL: envutil.String("GROQ_BASE_URL", ""),
		Models: envutil.List("GROQ_MODELS", []string{
			"llama-3.3-70b-versatile",
			"llama-3.1-8b-instant",
		}),
		Temperature:        envutil.Float("GROQ_TEMPERATURE", 0.4),
		CandidateTimeout:   envutil.Seconds("GROQ_CANDIDATE_TIMEOUT", 25*time.Second),
		PersistenceEnabled: os.Getenv("POSTGRES_HOST") != "",
	}
}
