package response

import (
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/view"
)

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// PlayerFromDeleted projects a removed record so the secret never leaves the server
func PlayerFromDeleted(p *model.Player) view.PublicPlayer {
	return view.Project(p, "")
}
