package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PlayerStatus is the recruitment pipeline stage of a prospect.
type PlayerStatus string

const (
	StatusLead       PlayerStatus = "LEAD"
	StatusContacted  PlayerStatus = "CONTACTED"
	StatusInterested PlayerStatus = "INTERESTED"
	StatusOffered    PlayerStatus = "OFFERED"
	StatusPlaced     PlayerStatus = "PLACED"
)

// stageOrder maps each pipeline stage to its position. Forward movement
// means a strictly larger index.
var stageOrder = map[PlayerStatus]int{
	StatusLead:       1,
	StatusContacted:  2,
	StatusInterested: 3,
	StatusOffered:    4,
	StatusPlaced:     5,
}

// StageIndex returns the ordinal of a pipeline stage, 0 if unknown.
func StageIndex(s PlayerStatus) int {
	return stageOrder[s]
}

type Player struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ScoutID string `gorm:"index;type:text;not null" json:"scoutId"`
	Scout   Scout  `gorm:"foreignKey:ScoutID" json:"-"`

	Name             string  `json:"name"`
	Position         string  `json:"position"`
	Club             string  `json:"club"`
	GradYear         int     `json:"gradYear"`
	GPA              float64 `json:"gpa"`
	CompetitionLevel string  `json:"competitionLevel"`
	VideoURL         string  `json:"videoUrl"`

	ParentName  string `json:"parentName"`
	ParentEmail string `json:"parentEmail"`
	ParentPhone string `json:"parentPhone"`

	Status PlayerStatus `gorm:"type:text;default:'LEAD'" json:"status"`

	// HighestStage is the largest stage ordinal this player has ever
	// reached. Pipeline awards key off it so a stage pays at most once
	// per player, no matter how often the status is reverted and re-set.
	HighestStage int `gorm:"default:1" json:"-"`

	// AI evaluation (filled asynchronously)
	EvalScore           *int           `json:"evalScore"`
	CollegeLevel        string         `json:"collegeLevel"`
	ScholarshipTier     string         `json:"scholarshipTier"`
	RecommendedPathways pq.StringArray `gorm:"type:text[]" json:"recommendedPathways"`
	Strengths           pq.StringArray `gorm:"type:text[]" json:"strengths"`
	Weaknesses          pq.StringArray `gorm:"type:text[]" json:"weaknesses"`
	NextAction          string         `json:"nextAction"`
	EvalSummary         string         `json:"evalSummary"`
	Recalibrating       bool           `gorm:"default:false" json:"recalibrating"`
}

func (Player) TableName() string {
	return "players"
}

func (p *Player) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = StatusLead
	}
	if p.HighestStage == 0 {
		p.HighestStage = StageIndex(p.Status)
	}
	return
}

// HasCompleteProfile reports whether the core scouting fields are all filled.
func (p *Player) HasCompleteProfile() bool {
	return p.Position != "" && p.Club != "" && p.GradYear > 0 && p.GPA > 0
}

// HasParentContact reports whether a guardian can be reached.
func (p *Player) HasParentContact() bool {
	return p.ParentEmail != "" || p.ParentPhone != ""
}
