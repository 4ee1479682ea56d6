// Package http provides http transport for the command gateway
package http

import (
	stdhttp "net/http"

	"tilltalk/internal/modkit/httpkit"
	"tilltalk/internal/services/gateway/domain"
	svc "tilltalk/internal/services/gateway/service"
)

// Register mounts gateway endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.UtteranceInput](r, "/", h.handle)
}

type handlers struct{ svc svc.Service }

// @Summary Execute a natural-language command
// @Description Classifies the utterance and runs it; always answers with one result
// @Tags Commands
// @Accept json
// @Produce json
// @Param payload body domain.UtteranceInput true "Utterance"
// @Success 200 {object} command.Result "ok"
// @Router /command [post]
func (h *handlers) handle(r *stdhttp.Request, in domain.UtteranceInput) (any, error) {
	return h.svc.Handle(r.Context(), in.Text), nil
}
