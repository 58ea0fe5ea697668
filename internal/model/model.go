// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// League is a competition identified by its name within a country.
// Country is nullable in storage, so it stays a pointer here.
type League struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   *string   `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// Team belongs to exactly one league.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LeagueID  int64     `json:"league_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamListing is one row of the team listing joined with its league.
// League fields are nullable because the join is a LEFT JOIN.
type TeamListing struct {
	ID            int64     `json:"id"`
	TeamName      string    `json:"team_name"`
	CreatedAt     time.Time `json:"created_at"`
	LeagueName    *string   `json:"league_name"`
	LeagueCountry *string   `json:"league_country"`
}

// LeagueFilter narrows the league listing. Empty fields are ignored.
type LeagueFilter struct {
	Country string
}

// TeamFilter narrows the team listing. Empty fields are ignored.
type TeamFilter struct {
	Country    string
	LeagueName string
}
