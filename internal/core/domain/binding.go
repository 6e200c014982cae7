package domain

import "time"

// AppBinding declares the runnable front-end: where its code lives in the
// stage, which file is the entry point, and which compute resource runs
// its queries. Re-declaration fully replaces the binding.
type AppBinding struct {
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	StageRoot      string    `json:"stage_root"`
	EntryFile      string    `json:"entry_file"`
	QueryWarehouse string    `json:"query_warehouse"`
	UpdatedAt      time.Time `json:"updated_at"`
}
