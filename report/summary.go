// Package report presents the results of a disk usage analysis.
package report

import (
	"github.com/klingtnet/dirsize/config"
	"github.com/klingtnet/dirsize/fstree"
	"github.com/klingtnet/dirsize/replay"
)

// Summary contains the answers to all queries for one transcript.
type Summary struct {
	Title        string `json:"title"`
	Threshold    int64  `json:"threshold"`
	Capacity     int64  `json:"capacity"`
	RequiredFree int64  `json:"required_free"`
	// Used is the size of the root directory.
	Used int64 `json:"used"`
	// SpaceToFree is the amount that has to be deleted, zero or less if enough space is available.
	SpaceToFree int64 `json:"space_to_free"`
	// TotalAtMost is the sum of all directories not larger than Threshold.
	TotalAtMost int64 `json:"total_at_most"`
	// DeletionCandidate is the size of the smallest directory freeing enough space.
	DeletionCandidate int64            `json:"deletion_candidate"`
	Small             []fstree.DirSize `json:"small"`
	Candidates        []fstree.DirSize `json:"candidates"`
	Directories       []fstree.DirSize `json:"directories"`
	Stats             replay.Stats     `json:"stats"`
}

// NewSummary runs all queries on result.
func NewSummary(title string, cfg *config.Config, result *replay.Result) *Summary {
	fs := result.FS
	spaceToFree := fs.SpaceToFree(cfg.Capacity, cfg.RequiredFree)

	return &Summary{
		Title:             title,
		Threshold:         cfg.Threshold,
		Capacity:          cfg.Capacity,
		RequiredFree:      cfg.RequiredFree,
		Used:              fs.MaxDirectorySize(),
		SpaceToFree:       spaceToFree,
		TotalAtMost:       fs.TotalSizeAtMost(cfg.Threshold),
		DeletionCandidate: fs.SmallestDirectoryAtLeast(spaceToFree),
		Small:             fs.DirectoriesAtMost(cfg.Threshold),
		Candidates:        fs.DeletionCandidates(spaceToFree),
		Directories:       fs.Directories(),
		Stats:             result.Stats,
	}
}
