package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/WarubiSports/scout-backend/internal/config"
	"github.com/WarubiSports/scout-backend/internal/database"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/lib/pq"
	"google.golang.org/genai"
)

func pqArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}

var aiClient *genai.Client

// InitAI creates the Gemini client. The AI layer is optional: without an
// API key every call degrades the same way a runtime failure would.
func InitAI() {
	cfg := config.AppConfig
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set, AI evaluation disabled")
		return
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Gemini client")
		return
	}
	aiClient = client
	logger.Info().Str("model", cfg.GeminiModel).Msg("Gemini client initialized")
}

// PlayerEvaluation is the structured result of an AI assessment.
type PlayerEvaluation struct {
	Score               int      `json:"score"`
	CollegeLevel        string   `json:"collegeLevel"`
	ScholarshipTier     string   `json:"scholarshipTier"`
	RecommendedPathways []string `json:"recommendedPathways"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	NextAction          string   `json:"nextAction"`
	Summary             string   `json:"summary"`
}

// EventPlan is the structured result of AI event planning.
type EventPlan struct {
	MarketingCopy string   `json:"marketingCopy"`
	Agenda        []string `json:"agenda"`
	Checklist     []struct {
		Task      string `json:"task"`
		Completed bool   `json:"completed"`
	} `json:"checklist"`
}

// FallbackEventPlan is the minimal hand-built plan used when generation
// fails. Event creation never blocks on the AI layer.
func FallbackEventPlan() *EventPlan {
	return &EventPlan{MarketingCopy: "", Agenda: []string{}}
}

func generateJSON(ctx context.Context, prompt string, dest interface{}) error {
	if aiClient == nil {
		return fmt.Errorf("ai client not initialized")
	}

	start := time.Now()
	resp, err := aiClient.Models.GenerateContent(ctx,
		config.AppConfig.GeminiModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("gemini call failed: %w", err)
	}

	text := resp.Text()
	// Models occasionally fence JSON despite the MIME type hint
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	if err := json.Unmarshal([]byte(text), dest); err != nil {
		return fmt.Errorf("unparseable gemini response: %w", err)
	}

	logger.Info().Dur("latency", time.Since(start)).Msg("Gemini generation complete")
	return nil
}

// EvaluatePlayer asks Gemini for a structured scouting assessment.
func EvaluatePlayer(ctx context.Context, player *models.Player) (*PlayerEvaluation, error) {
	prompt := fmt.Sprintf(`You are a soccer recruiting analyst. Evaluate this prospect and respond with a single JSON object with keys: score (integer 0-100), collegeLevel (string), scholarshipTier (string), recommendedPathways (array of strings), strengths (array of strings), weaknesses (array of strings), nextAction (string), summary (string).

Prospect:
Name: %s
Position: %s
Club: %s
Graduation year: %d
GPA: %.2f
Competition level: %s
Highlight video: %s`,
		player.Name, player.Position, player.Club, player.GradYear,
		player.GPA, player.CompetitionLevel, player.VideoURL)

	var eval PlayerEvaluation
	if err := generateJSON(ctx, prompt, &eval); err != nil {
		return nil, err
	}
	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > 100 {
		eval.Score = 100
	}
	return &eval, nil
}

// GenerateEventPlan asks Gemini for marketing copy, an agenda and a
// checklist for a scouting event.
func GenerateEventPlan(ctx context.Context, event *models.ScoutingEvent) (*EventPlan, error) {
	prompt := fmt.Sprintf(`You are an event planner for youth soccer scouting events. Create a plan for the event below and respond with a single JSON object with keys: marketingCopy (string), agenda (array of strings, one per time block), checklist (array of objects with keys task and completed, completed always false).

Event:
Title: %s
Description: %s
Location: %s
Starts: %s
Ends: %s`,
		event.Title, event.Description, event.Location,
		event.StartTime.Format(time.RFC1123), event.EndTime.Format(time.RFC1123))

	var plan EventPlan
	if err := generateJSON(ctx, prompt, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// RecalibratePlayer re-runs the AI evaluation after a high-impact field
// edit. Fire-and-forget: the caller has already set recalibrating=true and
// committed the edit. On success the evaluation fields are replaced; on
// failure the flag clears and the prior score stays. The edit is never
// rolled back either way.
func RecalibratePlayer(playerID string) {
	var player models.Player
	if err := database.DB.First(&player, "id = ?", playerID).Error; err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	eval, err := EvaluatePlayer(ctx, &player)
	if err != nil {
		logger.Warn().Err(err).Str("player", playerID).Msg("Recalibration failed, keeping prior score")
		database.DB.Model(&models.Player{}).Where("id = ?", playerID).
			UpdateColumn("recalibrating", false)
		return
	}

	if err := ApplyEvaluation(playerID, eval); err != nil {
		logger.Error().Err(err).Str("player", playerID).Msg("Failed to persist recalibration")
	}
}

// ApplyEvaluation replaces every evaluation field on the player and
// clears the recalibrating flag. All callers persist through here so a
// synchronous and a background evaluation leave the record in the same
// shape.
func ApplyEvaluation(playerID string, eval *PlayerEvaluation) error {
	return database.DB.Model(&models.Player{}).Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"eval_score":           eval.Score,
			"college_level":        eval.CollegeLevel,
			"scholarship_tier":     eval.ScholarshipTier,
			"recommended_pathways": pqArray(eval.RecommendedPathways),
			"strengths":            pqArray(eval.Strengths),
			"weaknesses":           pqArray(eval.Weaknesses),
			"next_action":          eval.NextAction,
			"eval_summary":         eval.Summary,
			"recalibrating":        false,
		}).Error
}

// ConsumeAIQuota counts one generation against the scout's daily quota.
// Allowed when Redis is down — quota is a cost guard, not a security
// boundary.
func ConsumeAIQuota(scoutID string) bool {
	if database.Redis == nil {
		return true
	}

	key := fmt.Sprintf("ai_quota:%s:%s", scoutID, time.Now().Format("2006-01-02"))
	count, err := database.Redis.Incr(database.Ctx, key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		database.Redis.Expire(database.Ctx, key, 48*time.Hour)
	}
	return count <= int64(config.AppConfig.AIDailyQuota)
}
