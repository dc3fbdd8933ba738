package ai

import (
	"context"

	"github.com/spigell/land-advisor/internal/land"
)

// Commentary is an advisory narrative produced for one analysis report. It
// supplements the numeric report and never feeds back into scoring.
type Commentary struct {
	Summary  string
	Opinion  string
	Cautions []string
	Raw      string
}

type Commentator interface {
	Comment(ctx context.Context, report *land.AnalysisResult) (*Commentary, error)
}
