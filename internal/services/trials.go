package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/WarubiSports/scout-backend/internal/config"
	"github.com/WarubiSports/scout-backend/internal/models"
	"github.com/WarubiSports/scout-backend/pkg/logger"
)

// TrialInviteRequest is the payload the partner trial system expects when
// a player reaches the Offered stage.
type TrialInviteRequest struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Position   string  `json:"position"`
	Club       string  `json:"club"`
	GradYear   int     `json:"grad_year"`
	GPA        float64 `json:"gpa"`
	VideoURL   string  `json:"video_url,omitempty"`
	ScoutID    string  `json:"scout_id"`
}

type TrialInviteResponse struct {
	InviteID string `json:"invite_id"`
	Status   string `json:"status"`
}

var trialHTTPClient = &http.Client{Timeout: 10 * time.Second}

// DispatchTrialInvite notifies the partner trial system about an offered
// player. Strictly best-effort: callers run it after the status change has
// committed and degrade failures to an informational notification.
func DispatchTrialInvite(player *models.Player) (*TrialInviteResponse, error) {
	cfg := config.AppConfig
	if cfg.TrialAPIURL == "" {
		return nil, fmt.Errorf("trial system not configured")
	}

	payload := TrialInviteRequest{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Position:   player.Position,
		Club:       player.Club,
		GradYear:   player.GradYear,
		GPA:        player.GPA,
		VideoURL:   player.VideoURL,
		ScoutID:    player.ScoutID,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.TrialAPIURL+"/invites", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.TrialAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.TrialAPIKey)
	}

	start := time.Now()
	resp, err := trialHTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("trial api failed with status: %d", resp.StatusCode)
	}

	var result TrialInviteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	logger.Info().
		Str("player", player.ID).
		Str("invite", result.InviteID).
		Dur("latency", time.Since(start)).
		Msg("Dispatched trial invite")

	return &result, nil
}
