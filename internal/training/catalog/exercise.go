package catalog

import "github.com/google/uuid"

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Exercise struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	CategoryID         *uuid.UUID `json:"category_id"`
	CategoryName       *string    `json:"category_name"`
	Description        *string    `json:"description"`
	DefaultSets        int        `json:"default_sets"`
	DefaultReps        int        `json:"default_reps"`
	DefaultWeight      *float64   `json:"default_weight"`
	DefaultRestSeconds int        `json:"default_rest_seconds"`
	CreatedBy          *string    `json:"created_by"`
	IsPublic           bool       `json:"is_public"`
}
