package model

import "time"

// Resume is the owner's curriculum.
type Resume struct {
	Name       string       `yaml:"name" json:"name" validate:"required"`
	Headline   string       `yaml:"headline" json:"headline,omitempty"`
	Summary    string       `yaml:"summary" json:"summary,omitempty"`
	Location   string       `yaml:"location" json:"location,omitempty"`
	Email      string       `yaml:"email" json:"email,omitempty" validate:"omitempty,email"`
	Experience []Experience `yaml:"experience" json:"experience" validate:"dive"`
	Education  []Education  `yaml:"education" json:"education" validate:"dive"`
}

// Experience is a single position held.
type Experience struct {
	Company    string   `yaml:"company" json:"company" validate:"required"`
	Role       string   `yaml:"role" json:"role" validate:"required"`
	Location   string   `yaml:"location" json:"location,omitempty"`
	Period     Period   `yaml:"period" json:"period"`
	Highlights []string `yaml:"highlights" json:"highlights,omitempty"`
	Tags       []string `yaml:"tags" json:"tags,omitempty"`
}

// Education is a degree or course.
type Education struct {
	Institution string `yaml:"institution" json:"institution" validate:"required"`
	Degree      string `yaml:"degree" json:"degree" validate:"required"`
	Period      Period `yaml:"period" json:"period"`
}

// ExperienceView is an Experience with its computed duration.
type ExperienceView struct {
	Experience
	Ongoing  bool `json:"ongoing"`
	Duration Span `json:"duration"`
}

// ResumeView is the resume as rendered at a point in time.
type ResumeView struct {
	Name            string           `json:"name"`
	Headline        string           `json:"headline,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	Location        string           `json:"location,omitempty"`
	Email           string           `json:"email,omitempty"`
	Experience      []ExperienceView `json:"experience"`
	Education       []Education      `json:"education"`
	TotalExperience Span             `json:"total_experience"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// SkillGroup is a named set of skills, e.g. "Languages".
type SkillGroup struct {
	Name   string  `yaml:"name" json:"name" bson:"name" validate:"required"`
	Skills []Skill `yaml:"skills" json:"skills" bson:"skills" validate:"dive"`
}

// Skill is a single skill with an optional proficiency.
type Skill struct {
	Name  string `yaml:"name" json:"name" bson:"name" validate:"required"`
	Level string `yaml:"level" json:"level,omitempty" bson:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}
